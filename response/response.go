package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response cavabın ümumi strukturu
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

// Success uğurlu cavab qaytarır
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Uğurlu",
		Data: data,
	})
}

// Created yeni resurs yaradıldıqda cavab qaytarır
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Uğurlu",
		Data: data,
	})
}

// Message yalnız mətn daşıyan uğurlu cavab qaytarır
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: message,
	})
}

// BadRequest yanlış sorğu cavabı qaytarır
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Unauthorized identifikasiya olunmamış sorğu cavabı qaytarır
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "İdentifikasiya olunmayıb",
	})
}

// Forbidden icazəsi olmayan sorğu cavabı qaytarır
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Bu əməliyyatı etməyə icazəniz yoxdur."
	}
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: message,
	})
}

// NotFound tapılmadı cavabı qaytarır
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Tapılmadı"
	}
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError daxili server xətası qaytarır; detal sızdırmır
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Serverdə daxili xəta baş verdi.",
	})
}
