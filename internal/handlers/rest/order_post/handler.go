package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/generated/dto"
	"service/internal/pkg/factory/price_estimate"
	"service/internal/service/order"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.OrderDraft{
		Sender: entities.Party{
			Name:    orderCreateDTO.Sender.Name,
			Phone:   orderCreateDTO.Sender.Phone,
			Address: orderCreateDTO.Sender.Address,
		},
		Receiver: entities.Party{
			Name:    orderCreateDTO.Receiver.Name,
			Phone:   orderCreateDTO.Receiver.Phone,
			Address: orderCreateDTO.Receiver.Address,
		},
		Package: entities.Package{
			Type:        entities.PackageType(orderCreateDTO.Package.Type),
			WeightKg:    orderCreateDTO.Package.WeightKg,
			Description: orderCreateDTO.Package.Description,
		},
		ServiceTier: entities.ServiceTierType(orderCreateDTO.ServiceTier),
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidPhone),
			errors.Is(err, price_estimate.ErrInvalidWeight),
			errors.Is(err, price_estimate.ErrUnknownPackageType),
			errors.Is(err, price_estimate.ErrUnknownServiceTier):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderIDConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(toOrderDTO(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
