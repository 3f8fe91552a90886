package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"miagenda/services/booking"
)

// respondSchedulingError maps engine errors onto HTTP statuses: validation is
// a 400, a booking collision is a 409 carrying the colliding set, a missing
// record is a 404 and anything else is a 500.
func respondSchedulingError(c *gin.Context, err error) {
	var validation *booking.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message, "code": validation.Code})
		return
	}

	var conflict *booking.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error":     conflict.Message,
			"code":      conflict.Code,
			"conflicts": conflict.Conflicts,
		})
		return
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
