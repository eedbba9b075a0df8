// Пакет middleware - обвязка HTTP-цепочки шлюза.
package middleware

import (
	"net/http"
	"time"

	"github.com/freshai/laundryfront/internal/logger"
)

// statusWriter - перехватывает код и размер ответа для журнала
type statusWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	size, err := w.ResponseWriter.Write(b)
	w.size += size
	return size, err
}

func (w *statusWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// LogHandle - журналирует каждый входящий запрос: метод, путь,
// код ответа, размер и длительность обработки.
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := statusWriter{ResponseWriter: w}
		h.ServeHTTP(&sw, r)

		logger.Get().Infow("request handled",
			"method", r.Method,
			"uri", r.RequestURI,
			"status", sw.status,
			"size", sw.size,
			"duration", time.Since(start),
		)
	})
}
