package auth

import (
	"net/http"

	"go.uber.org/zap"

	dto "lucky_wheel/internal/api/dto/auth"
	"lucky_wheel/internal/api/httperr"
	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/req"
	"lucky_wheel/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AuthService
	Log  *zap.SugaredLogger
}

type Handler struct {
	serv service.AuthService
	log  *zap.SugaredLogger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Handler{serv: deps.Serv, log: log}
}

// Login exchanges operator credentials for a bearer token used by the
// segment editor.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.serv.Login(r.Context(), model.Credentials{
		Login:    requestBody.Login,
		Password: requestBody.Password,
	})
	if err != nil {
		httperr.Write(w, err, h.log)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{AccessToken: data.AccessToken})
}
