package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	"github.com/vitrine/marketplace-backend/internal/app/service"
)

type CommentController struct {
	commentService service.CommentService
}

func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

func (ctrl *CommentController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateCommentInput
	if !bindJSON(c, &req) {
		return
	}

	comment, err := ctrl.commentService.Create(userID, req)
	if err != nil {
		respondError(c, err, "create comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// List handles GET /comments filtered by ?avaliacaoId= or ?avaliacaoProdutoId=.
func (ctrl *CommentController) List(c *gin.Context) {
	storeReviewID, ok := queryID(c, "avaliacaoId")
	if !ok {
		return
	}
	productReviewID, ok := queryID(c, "avaliacaoProdutoId")
	if !ok {
		return
	}

	comments, err := ctrl.commentService.List(repository.CommentFilter{
		StoreReviewID:   storeReviewID,
		ProductReviewID: productReviewID,
	})
	if err != nil {
		respondError(c, err, "list comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (ctrl *CommentController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	comment, err := ctrl.commentService.Get(id)
	if err != nil {
		respondError(c, err, "get comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (ctrl *CommentController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCommentInput
	if !bindJSON(c, &req) {
		return
	}

	comment, err := ctrl.commentService.Update(id, req)
	if err != nil {
		respondError(c, err, "update comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (ctrl *CommentController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	comment, err := ctrl.commentService.Delete(id)
	if err != nil {
		respondError(c, err, "delete comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}
