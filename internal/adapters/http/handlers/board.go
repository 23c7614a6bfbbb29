package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteboard/internal/adapters/http/views"
	"github.com/jsamuelsen/quoteboard/internal/app"
)

// SessionCookie carries the browser's board session ID.
const SessionCookie = "quoteboard_session"

// BoardHandler serves the quote board as HTML pages and as JSON. Every
// browser session gets its own board, keyed by SessionCookie.
//
// Load and submit failures never produce an error response: the board
// logs them and the rendered state is simply unchanged.
type BoardHandler struct {
	sessions *app.Sessions
	title    string
	dates    views.DateFormat
}

// NewBoardHandler creates a board handler.
func NewBoardHandler(sessions *app.Sessions, title string, dates views.DateFormat) *BoardHandler {
	return &BoardHandler{
		sessions: sessions,
		title:    title,
		dates:    dates,
	}
}

// Page handles GET /. The first request of a session performs its initial
// load.
func (h *BoardHandler) Page(c *gin.Context) {
	board := h.board(c)
	board.Mount(c.Request.Context())
	h.renderPage(c, board, http.StatusOK, nil)
}

// SelectFilter handles POST /filter from the filter form.
func (h *BoardHandler) SelectFilter(c *gin.Context) {
	board := h.board(c)

	var req dto.FilterRequest
	if err := dto.BindFormAndValidate(c, &req); err != nil {
		h.renderPage(c, board, http.StatusBadRequest, formErrors(err, "max_age_days"))
		return
	}

	board.Mount(c.Request.Context())

	if err := board.SelectFilter(c.Request.Context(), *req.MaxAgeDays); err != nil {
		h.renderPage(c, board, http.StatusBadRequest, formErrors(err, "max_age_days"))
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// SubmitQuote handles POST /quote from the submission form. Invalid input
// is kept in the form and reported next to the field.
func (h *BoardHandler) SubmitQuote(c *gin.Context) {
	board := h.board(c)

	var req dto.SubmitQuoteRequest
	if err := dto.BindFormAndValidate(c, &req); err != nil {
		board.UpdateDraft(req.Name, req.Message)
		h.renderPage(c, board, http.StatusBadRequest, formErrors(err, "name"))

		return
	}

	board.SubmitQuote(c.Request.Context(), req.Name, req.Message)

	c.Redirect(http.StatusSeeOther, "/")
}

// GetBoard handles GET /api/v1/board.
//
// @Summary Get the quote board
// @Tags board
// @Produce json
// @Success 200 {object} dto.BoardResponse
// @Router /api/v1/board [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	board := h.board(c)
	board.Mount(c.Request.Context())
	c.JSON(http.StatusOK, dto.NewBoardResponse(board.State()))
}

// PutFilter handles PUT /api/v1/board/filter.
//
// @Summary Select the age filter
// @Tags board
// @Accept json
// @Produce json
// @Param request body dto.FilterRequest true "Filter"
// @Success 200 {object} dto.BoardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/board/filter [put]
func (h *BoardHandler) PutFilter(c *gin.Context) {
	board := h.board(c)

	var req dto.FilterRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	board.Mount(c.Request.Context())

	if err := board.SelectFilter(c.Request.Context(), *req.MaxAgeDays); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBoardResponse(board.State()))
}

// PostQuote handles POST /api/v1/board/quotes.
//
// @Summary Submit a quote
// @Tags board
// @Accept json
// @Produce json
// @Param request body dto.SubmitQuoteRequest true "Quote"
// @Success 200 {object} dto.BoardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/board/quotes [post]
func (h *BoardHandler) PostQuote(c *gin.Context) {
	board := h.board(c)

	var req dto.SubmitQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	board.SubmitQuote(c.Request.Context(), req.Name, req.Message)

	c.JSON(http.StatusOK, dto.NewBoardResponse(board.State()))
}

// RegisterPageRoutes registers the HTML routes.
func (h *BoardHandler) RegisterPageRoutes(r gin.IRoutes) {
	r.GET("/", h.Page)
	r.POST("/filter", h.SelectFilter)
	r.POST("/quote", h.SubmitQuote)
}

// RegisterBoardRoutes registers the JSON routes on the given router group.
func (h *BoardHandler) RegisterBoardRoutes(rg *gin.RouterGroup) {
	board := rg.Group("/board")
	board.GET("", h.GetBoard)
	board.PUT("/filter", h.PutFilter)
	board.POST("/quotes", h.PostQuote)
}

// board resolves the session board for the request and refreshes the
// session cookie. The cookie lives as long as the browser session; idle
// boards expire server-side.
func (h *BoardHandler) board(c *gin.Context) *app.Board {
	id, _ := c.Cookie(SessionCookie)
	id, board := h.sessions.Board(id)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id, 0, "/", "", c.Request.TLS != nil, true)

	return board
}

func (h *BoardHandler) renderPage(c *gin.Context, board *app.Board, status int, errs map[string]string) {
	render(c, status, views.BoardPage(views.Page{
		Title:  h.title,
		State:  board.State(),
		Dates:  h.dates,
		Errors: errs,
	}))
}

// render writes a templ component as the HTML response.
func render(c *gin.Context, status int, component templ.Component) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")

	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// formErrors returns field messages for a form binding error. Errors that
// carry no field detail are reported against fallback.
func formErrors(err error, fallback string) map[string]string {
	if dto.IsValidationError(err) {
		return dto.ValidationErrors(err)
	}

	_, resp := dto.MapDomainError(err)
	if len(resp.Error.Details) > 0 {
		return resp.Error.Details
	}

	return map[string]string{fallback: "is invalid"}
}

func respondBindError(c *gin.Context, err error) {
	if dto.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			"request validation failed",
			dto.ValidationErrors(err),
		).WithTraceID(dto.GetTraceID(c)))

		return
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.ErrorCodeBadRequest,
		"request body is invalid",
	).WithTraceID(dto.GetTraceID(c)))
}
