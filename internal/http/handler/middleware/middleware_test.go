package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"ethsql/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		w       *httptest.ResponseRecorder
		req     *http.Request
		seenId  string
		handler http.Handler
	)

	BeforeEach(func() {
		seenId = ""
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/ledger/all", nil)
		handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenId, _ = r.Context().Value(middleware.RequestIDKey).(string)
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("assigns a new id", func() {
			middleware.NewRequestIDMiddleware().RequestID(handler).ServeHTTP(w, req)

			_, err := uuid.Parse(seenId)
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seenId))
		})

		It("keeps a valid incoming id", func() {
			incoming := uuid.NewString()
			req.Header.Set(middleware.RequestIDHeader, incoming)

			middleware.NewRequestIDMiddleware().RequestID(handler).ServeHTTP(w, req)
			Expect(seenId).To(Equal(incoming))
		})

		It("replaces a malformed incoming id", func() {
			req.Header.Set(middleware.RequestIDHeader, "not-a-uuid")

			middleware.NewRequestIDMiddleware().RequestID(handler).ServeHTTP(w, req)
			Expect(seenId).NotTo(Equal("not-a-uuid"))
			Expect(seenId).NotTo(BeEmpty())
		})
	})

	Describe("Logging", func() {
		It("logs the request with its status and id", func() {
			core, logs := observer.New(zapcore.InfoLevel)
			logger := zap.New(core).Sugar()

			chain := middleware.NewLoggingMiddleware(logger).Logging(handler)
			chain = middleware.NewRequestIDMiddleware().RequestID(chain)
			chain.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(logs.Len()).To(Equal(1))

			fields := logs.All()[0].ContextMap()
			Expect(fields).To(HaveKeyWithValue("method", "GET"))
			Expect(fields).To(HaveKeyWithValue("path", "/ledger/all"))
			Expect(fields).To(HaveKeyWithValue("status", int64(http.StatusTeapot)))
			Expect(fields).To(HaveKeyWithValue("request_id", seenId))
		})
	})
})
