package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hhcc/internal/model"
)

type mockTestimonialService struct {
	mock.Mock
}

func (m *mockTestimonialService) List(ctx context.Context) ([]model.Testimonial, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Testimonial), args.Error(1)
}

func (m *mockTestimonialService) Submit(ctx context.Context, name, role, content string, rating int) (*model.Testimonial, error) {
	args := m.Called(ctx, name, role, content, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestTestimonialHandler_List(t *testing.T) {
	mockSvc := new(mockTestimonialService)
	mockSvc.On("List", mock.Anything).Return([]model.Testimonial{{ID: "t1", Name: "Dana"}}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/testimonials", "")
	err := NewTestimonialHandler(mockSvc).List(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestTestimonialHandler_Submit(t *testing.T) {
	mockSvc := new(mockTestimonialService)
	mockSvc.On("Submit", mock.Anything, "Dana", "Parent", "Lovely place", 5).
		Return(&model.Testimonial{ID: "t4", Name: "Dana", Rating: 5}, nil)

	body := `{"name":"Dana","role":"Parent","content":"Lovely place","rating":5}`
	c, rec := newTestContext(http.MethodPost, "/api/testimonials", body)
	err := NewTestimonialHandler(mockSvc).Submit(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Testimonial submitted successfully", resp.Message)
}

func TestTestimonialHandler_Submit_MissingFields(t *testing.T) {
	mockSvc := new(mockTestimonialService)

	c, rec := newTestContext(http.MethodPost, "/api/testimonials", `{"name":"Dana"}`)
	err := NewTestimonialHandler(mockSvc).Submit(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing required fields", resp.Message)
	mockSvc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
