// Package gateway serves the booking service to browsers as plain JSON over
// HTTP. Calls are dispatched in-process through the same method table and
// interceptor chain as the gRPC server, so auth and rate limits behave the
// same on both ports.
package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"medicomeet-api/internal/handler"
)

const maxBody = 1 << 20

type Gateway struct {
	srv       handler.BookingServiceServer
	intercept grpc.UnaryServerInterceptor
	gatherer  prometheus.Gatherer
	log       zerolog.Logger

	trustProxy bool
}

// New builds a gateway over srv. intercept may be nil; gatherer defaults to
// the global prometheus registry.
func New(srv handler.BookingServiceServer, intercept grpc.UnaryServerInterceptor, gatherer prometheus.Gatherer, log zerolog.Logger) *Gateway {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Gateway{
		srv:       srv,
		intercept: intercept,
		gatherer:  gatherer,
		log:       log.With().Str("component", "gateway").Logger(),
	}
}

// TrustForwardedFor takes the client address from X-Forwarded-For and
// X-Real-IP. Only enable it behind a proxy that overwrites those headers,
// otherwise callers pick their own rate limit bucket.
func (g *Gateway) TrustForwardedFor(on bool) *Gateway {
	g.trustProxy = on
	return g
}

func (g *Gateway) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if g.trustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:      func(*http.Request, string) bool { return true },
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type", "Authorization"},
		MaxAge:               86400,
		OptionsSuccessStatus: http.StatusNoContent,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(g.gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", g.rpc("Login", fromBody))
		r.Post("/auth/register", g.rpc("Register", fromBody))

		r.Get("/specializations", g.rpc("ListSpecializations", none))
		r.Get("/specializations/{id}/doctors", g.rpc("ListDoctorsBySpecialization", func(r *http.Request) (map[string]any, error) {
			return map[string]any{"specializationId": chi.URLParam(r, "id")}, nil
		}))

		r.Get("/doctors", g.listDoctors)
		r.Get("/doctors/{id}", g.rpc("GetDoctor", withID))
		r.Get("/doctors/{id}/availability", g.rpc("GetDoctorAvailability", func(r *http.Request) (map[string]any, error) {
			in := map[string]any{"id": chi.URLParam(r, "id")}
			if v := r.URL.Query().Get("days"); v != "" {
				n, err := strconv.Atoi(v)
				if err != nil {
					return nil, status.Error(codes.InvalidArgument, "days must be a number")
				}
				in["days"] = n
			}
			return in, nil
		}))

		r.Post("/appointments", g.rpc("BookAppointment", fromBody))
		r.Get("/appointments/mine", g.rpc("ListMyAppointments", none))
		r.Post("/appointments/{id}/cancel", g.rpc("CancelAppointment", withID))

		r.Get("/admin/appointments", g.listAppointments)
		r.Get("/admin/overview", g.rpc("GetOverview", none))
	})
	return r
}

// listDoctors searches when any filter is present, otherwise lists all.
func (g *Gateway) listDoctors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("q") == "" && q.Get("specializationId") == "" {
		g.rpc("ListDoctors", none)(w, r)
		return
	}
	g.rpc("SearchDoctors", func(*http.Request) (map[string]any, error) {
		return map[string]any{"query": q.Get("q"), "specializationId": q.Get("specializationId")}, nil
	})(w, r)
}

func (g *Gateway) listAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("q") == "" && q.Get("status") == "" && q.Get("date") == "" {
		g.rpc("ListAllAppointments", none)(w, r)
		return
	}
	g.rpc("FilterAppointments", func(*http.Request) (map[string]any, error) {
		return map[string]any{"query": q.Get("q"), "status": q.Get("status"), "date": q.Get("date")}, nil
	})(w, r)
}

type inputFunc func(*http.Request) (map[string]any, error)

func none(*http.Request) (map[string]any, error) { return nil, nil }

func withID(r *http.Request) (map[string]any, error) {
	return map[string]any{"id": chi.URLParam(r, "id")}, nil
}

func fromBody(r *http.Request) (map[string]any, error) {
	b, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "unreadable body")
	}
	if len(b) == 0 {
		return nil, nil
	}
	var in map[string]any
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, "body must be a JSON object")
	}
	return in, nil
}

// rpc adapts one service method to an HTTP handler.
func (g *Gateway) rpc(name string, input inputFunc) http.HandlerFunc {
	desc, ok := handler.LookupMethod(name)
	if !ok {
		panic("gateway: unknown method " + name)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := input(r)
		if err != nil {
			g.writeError(w, err)
			return
		}
		in, err := structpb.NewStruct(raw)
		if err != nil {
			g.writeError(w, status.Error(codes.InvalidArgument, "unsupported request value"))
			return
		}

		resp, err := desc.Handler(g.srv, callContext(r), func(v any) error {
			proto.Merge(v.(proto.Message), in)
			return nil
		}, g.intercept)
		if err != nil {
			g.writeError(w, err)
			return
		}

		out, _ := resp.(*structpb.Struct)
		if name == "GetDoctor" && !out.GetFields()["found"].GetBoolValue() {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "doctor not found"})
			return
		}
		b, err := protojson.Marshal(out)
		if err != nil {
			g.writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

// callContext makes an HTTP request look like an incoming gRPC call to
// the interceptors: the Authorization header becomes metadata and the
// client address becomes the peer.
func callContext(r *http.Request) context.Context {
	md := metadata.MD{}
	if v := r.Header.Get("Authorization"); v != "" {
		md.Set("authorization", v)
	}
	ctx := metadata.NewIncomingContext(r.Context(), md)

	host, port, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host, port = r.RemoteAddr, "0"
	}
	p, _ := strconv.Atoi(port)
	return peer.NewContext(ctx, &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP(host), Port: p}})
}

func (g *Gateway) writeError(w http.ResponseWriter, err error) {
	st := status.Convert(err)
	code := httpStatus(st.Code())
	if code == http.StatusInternalServerError {
		g.log.Error().Err(err).Msg("gateway call failed")
	}
	writeJSON(w, code, map[string]string{"error": st.Message()})
}

func httpStatus(c codes.Code) int {
	switch c {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Canceled:
		return 499
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
