package calculator

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"calcpad/internal/domain"
	"calcpad/internal/ports"
)

// Controller — маршруты клавиатуры и истории. Один процесс — один калькулятор:
// события клавиатуры и истории сериализуются mu, каждое отрабатывает целиком до следующего.
type Controller struct {
	mu      sync.Mutex
	uc      ports.ICalculatorUseCase
	history ports.IHistoryStore
	log     *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.ICalculatorUseCase, history ports.IHistoryStore, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{uc: uc, history: history, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	keypad := api.Group("/keypad")
	keypad.GET("", c.display)
	keypad.POST("/digit", c.digit)
	keypad.POST("/decimal", c.decimal)
	keypad.POST("/operator", c.operator)
	keypad.POST("/equals", c.equals)
	keypad.POST("/clear", c.clear)
	keypad.POST("/delete", c.deleteLast)

	api.GET("/history", c.historyPanel)
	api.DELETE("/history", c.clearHistory)
}

// @Summary Текущий дисплей
// @Tags keypad
// @Produce json
// @Success 200 {object} DisplayResponse
// @Router /api/v1/keypad [get]
func (c *Controller) display(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ctx.JSON(http.StatusOK, toDisplay(c.uc.Display()))
}

// @Summary Нажать цифру
// @Tags keypad
// @Accept json
// @Produce json
// @Param request body DigitRequest true "Цифра 0-9 или точка"
// @Success 200 {object} DisplayResponse
// @Failure 400 {object} ErrorResponse "Невалидный запрос или не цифра"
// @Router /api/v1/keypad/digit [post]
func (c *Controller) digit(ctx *gin.Context) {
	var req DigitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("digit bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.uc.AppendDigit(req.Digit); err != nil {
		c.log.Warn("digit rejected", "error", err)
		c.fail(ctx, http.StatusBadRequest, err)
		return
	}
	ctx.JSON(http.StatusOK, toDisplay(c.uc.Display()))
}

// @Summary Нажать точку
// @Tags keypad
// @Produce json
// @Success 200 {object} DisplayResponse
// @Router /api/v1/keypad/decimal [post]
func (c *Controller) decimal(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uc.AppendDecimalPoint()
	ctx.JSON(http.StatusOK, toDisplay(c.uc.Display()))
}

// @Summary Выбрать оператор
// @Description Если левый операнд уже есть, сначала считает накопленное выражение.
// @Tags keypad
// @Accept json
// @Produce json
// @Param request body OperatorRequest true "Оператор"
// @Success 200 {object} DisplayResponse
// @Failure 400 {object} ErrorResponse "Неизвестный оператор"
// @Failure 422 {object} ErrorResponse "Деление на ноль"
// @Router /api/v1/keypad/operator [post]
func (c *Controller) operator(ctx *gin.Context) {
	var req OperatorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("operator bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	op, err := domain.ParseOperator(req.Operator)
	if err != nil {
		c.log.Warn("operator rejected", "operator", req.Operator)
		c.fail(ctx, http.StatusBadRequest, err)
		return
	}
	if err := c.uc.ChooseOperator(ctx.Request.Context(), op); err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toDisplay(c.uc.Display()))
}

// @Summary Нажать "="
// @Description Считает выражение; неполное выражение ничего не меняет. Результат попадает в историю.
// @Tags keypad
// @Produce json
// @Success 200 {object} EqualsResponse
// @Failure 422 {object} ErrorResponse "Деление на ноль"
// @Router /api/v1/keypad/equals [post]
func (c *Controller) equals(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, err := c.uc.Compute(ctx.Request.Context())
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, EqualsResponse{DisplayResponse: toDisplay(c.uc.Display()), Record: toRecord(rec)})
}

// @Summary Сбросить калькулятор
// @Tags keypad
// @Produce json
// @Success 200 {object} DisplayResponse
// @Router /api/v1/keypad/clear [post]
func (c *Controller) clear(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uc.Clear()
	ctx.JSON(http.StatusOK, toDisplay(c.uc.Display()))
}

// @Summary Стереть последний символ
// @Tags keypad
// @Produce json
// @Success 200 {object} DisplayResponse
// @Router /api/v1/keypad/delete [post]
func (c *Controller) deleteLast(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uc.DeleteLastChar()
	ctx.JSON(http.StatusOK, toDisplay(c.uc.Display()))
}

// @Summary Открыть историю
// @Description Последние 10 вычислений, новые сначала.
// @Tags history
// @Produce json
// @Success 200 {object} HistoryResponse
// @Router /api/v1/history [get]
func (c *Controller) historyPanel(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ctx.JSON(http.StatusOK, toHistory(c.history.Panel(ctx.Request.Context())))
}

// @Summary Очистить историю
// @Tags history
// @Produce json
// @Success 200 {object} HistoryResponse
// @Failure 500 {object} ErrorResponse "Ошибка хранилища"
// @Router /api/v1/history [delete]
func (c *Controller) clearHistory(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.history.Clear(ctx.Request.Context()); err != nil {
		c.log.Error("history clear failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toHistory(domain.NewHistoryPanel(nil)))
}

// respondError отвечает на ошибку машины ввода. Вызывается под mu.
func (c *Controller) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDivisionByZero):
		c.fail(ctx, http.StatusUnprocessableEntity, domain.ErrDivisionByZero)
	case errors.Is(err, domain.ErrUnknownOperator):
		c.fail(ctx, http.StatusBadRequest, err)
	default:
		c.log.Error("keypad event failed", "error", err)
		c.fail(ctx, http.StatusInternalServerError, err)
	}
}

// fail пишет ошибку вместе с текущим дисплеем. Вызывается под mu.
func (c *Controller) fail(ctx *gin.Context, status int, err error) {
	d := toDisplay(c.uc.Display())
	ctx.JSON(status, ErrorResponse{Error: err.Error(), Display: &d})
}
