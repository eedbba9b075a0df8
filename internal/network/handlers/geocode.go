package handlers

import (
	"net/http"
	"strconv"

	"github.com/freshai/laundryfront/internal/services"
)

// GeocodeResponse - автозаполнение адреса по координатам
type GeocodeResponse struct {
	Address string `json:"address"`
}

// GeocodeHandler — обратное геокодирование для формы заказа.
// Ошибка геокодера не фатальна: отдаём пустой адрес, поле
// остаётся для ручного ввода.
func GeocodeHandler(g services.GeocoderService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
		lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
		if latErr != nil || lonErr != nil {
			http.Error(w, "Invalid coordinates", http.StatusBadRequest)
			return
		}

		address, err := g.ReverseLookup(r.Context(), lat, lon)
		if err != nil {
			WriteJSON(w, GeocodeResponse{Address: ""})
			return
		}
		WriteJSON(w, GeocodeResponse{Address: address})
	})
}
