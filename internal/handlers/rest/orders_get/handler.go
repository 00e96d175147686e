package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AlekSi/pointer"
	"service/internal/entities"
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
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toOrderListDTO(orders))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.OrderFilter, error) {
	var filter entities.OrderFilter
	query := r.URL.Query()

	if status := query.Get("status"); status != "" {
		filter.Status = pointer.To(entities.OrderStatusType(status))
	}

	if courierID := query.Get("courier_ID"); courierID != "" {
		id, err := strconv.ParseInt(courierID, 10, 64)
		if err != nil {
			return entities.OrderFilter{}, err
		}
		filter.CourierID = pointer.To(id)
	}

	if createdFrom := query.Get("created_from"); createdFrom != "" {
		from, err := time.Parse(time.RFC3339, createdFrom)
		if err != nil {
			return entities.OrderFilter{}, err
		}
		filter.CreatedFrom = pointer.To(from)
	}

	if createdTo := query.Get("created_to"); createdTo != "" {
		to, err := time.Parse(time.RFC3339, createdTo)
		if err != nil {
			return entities.OrderFilter{}, err
		}
		filter.CreatedTo = pointer.To(to)
	}

	if limit := query.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return entities.OrderFilter{}, errors.New("invalid limit")
		}
		filter.Limit = n
	}

	return filter, nil
}
