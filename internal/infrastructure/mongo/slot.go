package mongo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"calcpad/internal/ports"
)

var _ ports.IKeyValueStore = (*SlotStore)(nil)

// slotDoc — документ коллекции: ключ слота в _id, сериализованное значение строкой.
type slotDoc struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// SlotStore реализует ports.IKeyValueStore для MongoDB.
type SlotStore struct {
	client *Client
	log    *slog.Logger
}

// NewSlotStore возвращает хранилище слотов.
func NewSlotStore(client *Client, log *slog.Logger) *SlotStore {
	if log == nil {
		log = slog.Default()
	}
	return &SlotStore{client: client, log: log}
}

// Get возвращает значение слота. Если документа нет — found == false.
func (s *SlotStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc slotDoc
	err := s.client.Coll().FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		s.log.Debug("slot get failed", "key", key, "error", err)
		return nil, false, err
	}
	return []byte(doc.Value), true, nil
}

// Set заменяет документ слота (upsert).
func (s *SlotStore) Set(ctx context.Context, key string, value []byte) error {
	doc := slotDoc{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	_, err := s.client.Coll().ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		s.log.Debug("slot set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Remove удаляет документ слота.
func (s *SlotStore) Remove(ctx context.Context, key string) error {
	if _, err := s.client.Coll().DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		s.log.Debug("slot remove failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping проверяет доступность БД.
func (s *SlotStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}
