package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
	"github.com/kabitalok/kabitalok-payments/internal/middleware"
)

// studentHandler handles HTTP requests related to students and their
// nested payment history.
type studentHandler struct {
	studentService portssvc.StudentSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

func newStudentHandler(ss portssvc.StudentSvcFacade, ps portssvc.PaymentSvcFacade) *studentHandler {
	return &studentHandler{studentService: ss, paymentService: ps}
}

// registerStudentRoutes registers routes related to students.
func registerStudentRoutes(rg *gin.RouterGroup, studentService portssvc.StudentSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newStudentHandler(studentService, paymentService)

	students := rg.Group("/students")
	{
		students.POST("", h.createStudent)
		students.GET("", h.listStudents)
		students.GET("/inactive", h.listInactiveStudents)
		students.GET("/:id", h.getStudent)
		students.PUT("/:id", h.updateStudent)
		students.DELETE("/:id", h.deleteStudent)
		students.POST("/:id/payments", h.addPayment)
		students.GET("/:id/payments", h.listStudentPayments)
	}
}

func (h *studentHandler) createStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	student, err := h.studentService.CreateStudent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create student", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create student"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToStudentResponse(student))
}

func (h *studentHandler) listStudents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListStudentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	students, totalPages, err := h.studentService.ListStudents(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list students", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list students"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListStudentsResponse(students, params.Page, totalPages))
}

func (h *studentHandler) listInactiveStudents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	months, err := strconv.Atoi(c.DefaultQuery("months", "3"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid months"})
		return
	}

	students, err := h.studentService.ListInactiveStudents(c.Request.Context(), months)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list inactive students", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list inactive students"})
		}
		return
	}

	out := make([]dto.StudentResponse, len(students))
	for i := range students {
		out[i] = dto.ToStudentResponse(&students[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *studentHandler) getStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	student, err := h.studentService.GetStudentByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		} else {
			logger.Error("Failed to get student", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve student"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

func (h *studentHandler) updateStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	student, err := h.studentService.UpdateStudent(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update student", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update student"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

func (h *studentHandler) deleteStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.studentService.DeleteStudent(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		} else {
			logger.Error("Failed to delete student", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete student"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *studentHandler) addPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c)
	payment, err := h.paymentService.AddPayment(c.Request.Context(), id, req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *studentHandler) listStudentPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var params dto.ListStudentPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	payments, err := h.paymentService.ListStudentPayments(c.Request.Context(), id, params.Term, params.Field)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list payments", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}
