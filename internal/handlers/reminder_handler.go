package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// ReminderHandler handles borrower reminder requests.
type ReminderHandler struct {
	reminderService services.ReminderServicer
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService services.ReminderServicer) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// SendReminderRequest represents the request payload for sending a reminder.
type SendReminderRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
	BorrowerEmail string `json:"borrowerEmail" binding:"required,email"`
}

// SendReminderResponse represents a successful reminder send.
type SendReminderResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ReminderCount int    `json:"reminderCount"`
	MessageID     string `json:"messageId"`
}

// SendReminder emails the borrower of a borrowing transaction
// @Summary     Send borrower reminder
// @Description Email a payment reminder to the borrower of a borrowing transaction
// @Tags        reminders
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SendReminderRequest true "Reminder details"
// @Success     200 {object} SendReminderResponse "Reminder sent"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Email delivery failed"
// @Router      /reminders/send [post]
func (h *ReminderHandler) SendReminder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SendReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.reminderService.SendReminder(userID, req.TransactionID, req.BorrowerEmail)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SendReminderResponse{
		Success:       true,
		Message:       "Reminder email sent successfully",
		ReminderCount: result.ReminderCount,
		MessageID:     result.MessageID,
	})
}
