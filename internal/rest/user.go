package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundnest/soundnest/domain"
	"github.com/soundnest/soundnest/internal/rest/request"
)

type userHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *userHandler {
	return &userHandler{
		Service: svc,
	}
}

func (h *userHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Register(ctx, req.Name, req.Username, req.Password); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (h *userHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	token, err := h.Service.Login(ctx, req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
