package handler_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"medicomeet-api/internal/booking"
	"medicomeet-api/internal/catalog"
	"medicomeet-api/internal/handler"
	"medicomeet-api/internal/metrics"
	"medicomeet-api/internal/middleware"
	"medicomeet-api/internal/model"
	"medicomeet-api/internal/store"
)

const secret = "test-secret"

func setup(t *testing.T) (*grpc.ClientConn, *store.Store) {
	t.Helper()
	st := store.New()
	users := store.NewUsers()
	require.NoError(t, store.SeedDemoUsers(users))

	svc := booking.NewService(catalog.Seeded(), st, zerolog.Nop(), nil)
	h := handler.New(svc, users, secret, time.Minute, zerolog.Nop())

	srv := grpc.NewServer(grpc.UnaryInterceptor(middleware.Chain(
		middleware.Observe(zerolog.Nop(), metrics.New(prometheus.NewRegistry())),
		middleware.RateLimit(middleware.NewRateLimiter(1000, 1000)),
		middleware.Auth(secret),
	)))
	handler.RegisterBookingServiceServer(srv, h)

	lis := bufconn.Listen(1 << 20)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn, st
}

func call(ctx context.Context, conn *grpc.ClientConn, method string, in map[string]any) (map[string]any, error) {
	req, err := structpb.NewStruct(in)
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := conn.Invoke(ctx, handler.FullMethod(method), req, out); err != nil {
		return nil, err
	}
	return out.AsMap(), nil
}

func login(t *testing.T, conn *grpc.ClientConn, email, password string) (context.Context, string) {
	t.Helper()
	resp, err := call(context.Background(), conn, "Login", map[string]any{"email": email, "password": password})
	require.NoError(t, err)
	user := resp["user"].(map[string]any)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+resp["token"].(string))
	return ctx, user["id"].(string)
}

func asUser(t *testing.T, conn *grpc.ClientConn) (context.Context, string) {
	return login(t, conn, "user@example.com", "password")
}

func asAdmin(t *testing.T, conn *grpc.ClientConn) context.Context {
	ctx, _ := login(t, conn, "admin@medicomeet.com", "admin123")
	return ctx
}

func bookingPayload(date string) map[string]any {
	return map[string]any{
		"doctorId":        "1",
		"patientName":     "John Doe",
		"patientEmail":    "user@example.com",
		"patientPhone":    "555-0100",
		"appointmentDate": date,
		"appointmentTime": "10:00 AM",
		"reason":          "checkup",
	}
}

func book(t *testing.T, conn *grpc.ClientConn, ctx context.Context, date string) map[string]any {
	t.Helper()
	resp, err := call(ctx, conn, "BookAppointment", bookingPayload(date))
	require.NoError(t, err)
	return resp["appointment"].(map[string]any)
}

func TestLogin(t *testing.T) {
	conn, _ := setup(t)

	tests := []struct {
		name     string
		email    string
		password string
		code     codes.Code
		role     string
	}{
		{"admin", "admin@medicomeet.com", "admin123", codes.OK, "admin"},
		{"user", "user@example.com", "password", codes.OK, "user"},
		{"wrong password", "user@example.com", "nope", codes.Unauthenticated, ""},
		{"unknown email", "ghost@example.com", "password", codes.Unauthenticated, ""},
		{"missing fields", "", "", codes.InvalidArgument, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := call(context.Background(), conn, "Login", map[string]any{
				"email": tt.email, "password": tt.password,
			})
			assert.Equal(t, tt.code, status.Code(err))
			if tt.code == codes.OK {
				assert.NotEmpty(t, resp["token"])
				assert.Equal(t, tt.role, resp["user"].(map[string]any)["role"])
			}
		})
	}
}

func TestRegister(t *testing.T) {
	conn, _ := setup(t)
	email := fmt.Sprintf("test-%s@test.com", uuid.New().String()[:8])

	resp, err := call(context.Background(), conn, "Register", map[string]any{
		"name": "Test User", "email": email, "password": "testpass123",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", resp["user"].(map[string]any)["role"])

	_, err = call(context.Background(), conn, "Register", map[string]any{
		"name": "Again", "email": email, "password": "testpass123",
	})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = call(context.Background(), conn, "Register", map[string]any{
		"name": "Short", "email": "short@test.com", "password": "abc",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	ctx, _ := login(t, conn, email, "testpass123")
	_, err = call(ctx, conn, "ListMyAppointments", nil)
	assert.NoError(t, err)
}

func TestCatalogIsOpen(t *testing.T) {
	conn, _ := setup(t)
	ctx := context.Background()

	resp, err := call(ctx, conn, "ListSpecializations", nil)
	require.NoError(t, err)
	assert.Len(t, resp["specializations"], 8)

	resp, err = call(ctx, conn, "ListDoctors", nil)
	require.NoError(t, err)
	assert.Len(t, resp["doctors"], 6)

	resp, err = call(ctx, conn, "GetDoctor", map[string]any{"id": "4"})
	require.NoError(t, err)
	assert.Equal(t, true, resp["found"])
	assert.Equal(t, 200.0, resp["doctor"].(map[string]any)["consultationFee"])

	resp, err = call(ctx, conn, "GetDoctor", map[string]any{"id": "404"})
	require.NoError(t, err)
	assert.Equal(t, false, resp["found"])
	assert.NotContains(t, resp, "doctor")

	resp, err = call(ctx, conn, "ListDoctorsBySpecialization", map[string]any{"specializationId": "nonexistent-id"})
	require.NoError(t, err)
	assert.Empty(t, resp["doctors"])

	resp, err = call(ctx, conn, "SearchDoctors", map[string]any{"query": "patel"})
	require.NoError(t, err)
	assert.Len(t, resp["doctors"], 1)

	resp, err = call(ctx, conn, "GetDoctorAvailability", map[string]any{"id": "2", "days": 7})
	require.NoError(t, err)
	assert.Equal(t, true, resp["found"])
	assert.Len(t, resp["dates"], 7)
}

func TestBookAndListMine(t *testing.T) {
	conn, _ := setup(t)
	ctx, userID := asUser(t, conn)

	payload := bookingPayload("2024-01-15")
	payload["userId"] = "someone-else"
	resp, err := call(ctx, conn, "BookAppointment", payload)
	require.NoError(t, err)
	a := resp["appointment"].(map[string]any)
	assert.Equal(t, "confirmed", a["status"])
	assert.Equal(t, userID, a["userId"], "user comes from the token")
	assert.NotEmpty(t, a["id"])

	resp, err = call(ctx, conn, "ListMyAppointments", nil)
	require.NoError(t, err)
	mine := resp["appointments"].([]any)
	require.Len(t, mine, 1)
	assert.Equal(t, a["id"], mine[0].(map[string]any)["id"])
}

func TestBookValidation(t *testing.T) {
	conn, st := setup(t)
	ctx, _ := asUser(t, conn)

	payload := bookingPayload("tomorrow")
	_, err := call(ctx, conn, "BookAppointment", payload)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	payload = bookingPayload("2024-01-15")
	delete(payload, "patientPhone")
	_, err = call(ctx, conn, "BookAppointment", payload)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Zero(t, st.Len())
}

func TestBookRequiresToken(t *testing.T) {
	conn, _ := setup(t)
	_, err := call(context.Background(), conn, "BookAppointment", bookingPayload("2024-01-15"))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestCancel(t *testing.T) {
	conn, st := setup(t)
	userCtx, _ := asUser(t, conn)
	a := book(t, conn, userCtx, "2024-01-15")
	id := a["id"].(string)

	otherCtx, _ := login(t, conn, "admin@medicomeet.com", "admin123")
	strangerEmail := "stranger@test.com"
	_, err := call(context.Background(), conn, "Register", map[string]any{
		"name": "Stranger", "email": strangerEmail, "password": "password1",
	})
	require.NoError(t, err)
	strangerCtx, _ := login(t, conn, strangerEmail, "password1")

	tests := []struct {
		name string
		ctx  context.Context
		id   string
		want bool
	}{
		{"unknown id", userCtx, "nope", false},
		{"someone else's", strangerCtx, id, false},
		{"owner", userCtx, id, true},
		{"owner again", userCtx, id, true},
		{"admin any", otherCtx, id, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := call(tt.ctx, conn, "CancelAppointment", map[string]any{"id": tt.id})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp["cancelled"])
		})
	}

	got, ok := st.Appointment(id)
	require.True(t, ok)
	assert.Equal(t, model.StatusCancelled, got.Status)
}

// countingAPI records which access-layer calls a handler makes.
type countingAPI struct {
	booking.API
	calls []string
}

func (c *countingAPI) GetAppointment(ctx context.Context, id string) (model.Appointment, bool, error) {
	c.calls = append(c.calls, "GetAppointment")
	return c.API.GetAppointment(ctx, id)
}

func (c *countingAPI) Cancel(ctx context.Context, id string) (bool, error) {
	c.calls = append(c.calls, "Cancel")
	return c.API.Cancel(ctx, id)
}

func (c *countingAPI) CancelForUser(ctx context.Context, id, userID string) (bool, error) {
	c.calls = append(c.calls, "CancelForUser")
	return c.API.CancelForUser(ctx, id, userID)
}

func TestCancelIsOneCall(t *testing.T) {
	st := store.New()
	st.Insert(model.Appointment{ID: "a1", DoctorID: "1", UserID: "2", AppointmentDate: "2024-01-15", Status: model.StatusConfirmed})
	api := &countingAPI{API: booking.NewService(catalog.Seeded(), st, zerolog.Nop(), nil)}
	h := handler.New(api, store.NewUsers(), secret, time.Minute, zerolog.Nop())

	as := func(uid string, role model.Role) context.Context {
		ctx := context.WithValue(context.Background(), middleware.UserIDKey, uid)
		return context.WithValue(ctx, middleware.RoleKey, role)
	}
	in, err := structpb.NewStruct(map[string]any{"id": "a1"})
	require.NoError(t, err)

	out, err := h.CancelAppointment(as("3", model.RoleUser), in)
	require.NoError(t, err)
	assert.Equal(t, false, out.AsMap()["cancelled"])
	assert.Equal(t, []string{"CancelForUser"}, api.calls)

	api.calls = nil
	out, err = h.CancelAppointment(as("2", model.RoleUser), in)
	require.NoError(t, err)
	assert.Equal(t, true, out.AsMap()["cancelled"])
	assert.Equal(t, []string{"CancelForUser"}, api.calls)

	api.calls = nil
	_, err = h.CancelAppointment(as("1", model.RoleAdmin), in)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cancel"}, api.calls)
}

func TestAdminOnly(t *testing.T) {
	conn, _ := setup(t)
	userCtx, _ := asUser(t, conn)

	for _, m := range []string{"ListAllAppointments", "FilterAppointments", "GetOverview"} {
		_, err := call(userCtx, conn, m, nil)
		assert.Equal(t, codes.PermissionDenied, status.Code(err), m)
	}
}

func TestAdminViews(t *testing.T) {
	conn, st := setup(t)
	userCtx, _ := asUser(t, conn)
	adminCtx := asAdmin(t, conn)

	first := book(t, conn, userCtx, "2024-01-15")
	second := book(t, conn, userCtx, "2024-01-16")
	st.Insert(model.Appointment{ID: "done-1", DoctorID: "1", AppointmentDate: "2024-01-01", Status: model.StatusCompleted, CreatedAt: time.Unix(0, 0)})
	st.Insert(model.Appointment{ID: "done-2", DoctorID: "4", AppointmentDate: "2024-01-02", Status: model.StatusCompleted, CreatedAt: time.Unix(0, 0)})

	resp, err := call(adminCtx, conn, "ListAllAppointments", nil)
	require.NoError(t, err)
	all := resp["appointments"].([]any)
	require.Len(t, all, 4)
	assert.Equal(t, second["id"], all[0].(map[string]any)["id"])
	assert.Equal(t, first["id"], all[1].(map[string]any)["id"])

	resp, err = call(adminCtx, conn, "FilterAppointments", map[string]any{"status": "completed"})
	require.NoError(t, err)
	assert.Len(t, resp["appointments"], 2)

	resp, err = call(adminCtx, conn, "FilterAppointments", map[string]any{"query": "JOHN", "date": "2024-01-16"})
	require.NoError(t, err)
	assert.Len(t, resp["appointments"], 1)

	_, err = call(adminCtx, conn, "FilterAppointments", map[string]any{"status": "lost"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err = call(adminCtx, conn, "GetOverview", nil)
	require.NoError(t, err)
	o := resp["overview"].(map[string]any)
	assert.Equal(t, 350.0, o["revenue"])
	assert.Equal(t, 6.0, o["totalDoctors"])
	assert.Equal(t, 4.0, o["totalAppointments"])
	assert.InDelta(t, 28.7/6, o["averageRating"], 1e-9)
}
