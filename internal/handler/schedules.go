package handler

import (
	"net/http"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/apierror"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/dto"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type SchedulesHandler struct{ svc service.ScheduleService }

func NewSchedulesHandler(svc service.ScheduleService) *SchedulesHandler {
	return &SchedulesHandler{svc: svc}
}

func (h *SchedulesHandler) CreateShift(c *gin.Context) {
	var req dto.CreateShiftRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateShift(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SchedulesHandler) ListShifts(c *gin.Context) {
	resp, err := h.svc.ListShifts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SchedulesHandler) AssignShift(c *gin.Context) {
	var req dto.AssignShiftRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AssignShift(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EmployeeSchedule serves GET /employee-schedules/employee/:id?start=&end=.
func (h *SchedulesHandler) EmployeeSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var filter dto.ScheduleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(filter); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return
	}
	resp, err := h.svc.EmployeeSchedule(c.Request.Context(), id, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SchedulesHandler) DeleteAssignment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteAssignment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
