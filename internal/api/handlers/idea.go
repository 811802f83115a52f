package handlers

import (
	"net/http"

	"publiflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IdeaHandler handles HTTP requests for the idea board
type IdeaHandler struct {
	ideaService service.IdeaServiceInterface
}

// NewIdeaHandler creates a new idea handler
func NewIdeaHandler(ideaService service.IdeaServiceInterface) *IdeaHandler {
	return &IdeaHandler{
		ideaService: ideaService,
	}
}

// ListIdeas handles GET /ideas
// @Summary List ideas
// @Tags ideas
// @Produce json
// @Success 200 {array} service.IdeaResponse "Ideas"
// @Security BearerAuth
// @Router /ideas [get]
func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	ideas, err := h.ideaService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ideas)
}

// CreateIdea handles POST /ideas
// @Summary Create an idea
// @Description Create an idea card; it lands in the first column unless a status is given
// @Tags ideas
// @Accept json
// @Produce json
// @Param idea body service.CreateIdeaRequest true "Idea data"
// @Success 201 {object} service.IdeaResponse "Successfully created idea"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /ideas [post]
func (h *IdeaHandler) CreateIdea(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea, err := h.ideaService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, idea)
}

// UpdateIdea handles PUT /ideas/:id
// @Summary Update an idea
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path string true "Idea ID (UUID)"
// @Param idea body service.UpdateIdeaRequest true "Idea data"
// @Success 200 {object} service.IdeaResponse "Updated idea"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Security BearerAuth
// @Router /ideas/{id} [put]
func (h *IdeaHandler) UpdateIdea(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "idea")
	if !ok {
		return
	}

	var req service.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea, err := h.ideaService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, idea)
}

// UpdateIdeaStatus handles PATCH /ideas/:id/status
// @Summary Move an idea to another stage
// @Tags ideas
// @Accept json
// @Param id path string true "Idea ID (UUID)"
// @Param status body service.UpdateIdeaStatusRequest true "New stage"
// @Success 204 "Status updated"
// @Failure 400 {object} ErrorResponse "Unknown stage"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Security BearerAuth
// @Router /ideas/{id}/status [patch]
func (h *IdeaHandler) UpdateIdeaStatus(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "idea")
	if !ok {
		return
	}

	var req service.UpdateIdeaStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ideaService.UpdateStatus(c.Request.Context(), userID, id, &req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteIdea handles DELETE /ideas/:id
// @Summary Delete an idea
// @Tags ideas
// @Param id path string true "Idea ID (UUID)"
// @Success 204 "Idea deleted"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Security BearerAuth
// @Router /ideas/{id} [delete]
func (h *IdeaHandler) DeleteIdea(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "idea")
	if !ok {
		return
	}

	if err := h.ideaService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBoard handles GET /ideas/board
// @Summary Idea board
// @Description Columns of the active stage scheme with the user's cards, including moves still being saved
// @Tags ideas
// @Produce json
// @Success 200 {object} board.View "Board"
// @Security BearerAuth
// @Router /ideas/board [get]
func (h *IdeaHandler) GetBoard(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	view, err := h.ideaService.Board(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// MoveCard handles POST /ideas/board/moves
// @Summary Drag a card on the board
// @Description Applies the move optimistically and saves the new stage in the background. A drop outside any column is ignored.
// @Tags ideas
// @Accept json
// @Produce json
// @Param move body service.BoardMoveRequest true "Drag result"
// @Success 202 {object} service.BoardMoveResponse "Move accepted"
// @Success 200 {object} service.BoardMoveResponse "Nothing to move"
// @Failure 400 {object} ErrorResponse "Invalid move"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Security BearerAuth
// @Router /ideas/board/moves [post]
func (h *IdeaHandler) MoveCard(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.BoardMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.ideaService.MoveOnBoard(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if !resp.Applied {
		c.JSON(http.StatusOK, resp)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}
