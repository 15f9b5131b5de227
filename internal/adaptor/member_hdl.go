package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MemberHandler struct {
	service usecase.MemberService
	log     *zap.Logger
}

func NewMemberHandler(service usecase.MemberService, log *zap.Logger) *MemberHandler {
	return &MemberHandler{
		service: service,
		log:     log.With(zap.String("handler", "member")),
	}
}

// List handles GET /api/members
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	status := query.Get("status")
	isTrial := utils.ParseBoolPtr(query.Get("is_trial"))

	members, err := h.service.List(r.Context(), status, isTrial)
	if err != nil {
		handleServiceError(w, h.log, err, "list members")
		return
	}

	utils.ResponseSuccess(w, members)
}

// Get handles GET /api/members/{id}
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseNotFound(w, "Member not found")
		return
	}

	member, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get member")
		return
	}

	utils.ResponseSuccess(w, member)
}

// Create handles POST /api/members
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	member, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create member")
		return
	}

	utils.ResponseCreated(w, member)
}

// UpdateStatus handles PUT /api/members/{id}/status
func (h *MemberHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseNotFound(w, "Member not found")
		return
	}

	var req request.UpdateMemberStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	member, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update member status")
		return
	}

	utils.ResponseSuccess(w, member)
}
