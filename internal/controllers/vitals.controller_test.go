package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"biomonitor/internal/cache"
	"biomonitor/internal/controllers"
	"biomonitor/internal/mocks"
	"biomonitor/internal/models"
	"biomonitor/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupVitalsControllerWithMocks() (*controllers.VitalsController, *mocks.MockVitalRecordRepository, *cache.MemorySnapshotStore) {
	mockRecords := new(mocks.MockVitalRecordRepository)
	snapshots := cache.NewMemorySnapshotStore()
	controller := controllers.NewVitalsController(services.NewVitalsService(snapshots, mockRecords, nil))
	return controller, mockRecords, snapshots
}

func addActiveProfileMiddleware(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestMeasureTemperature(t *testing.T) {
	controller, _, snapshots := setupVitalsControllerWithMocks()

	router := setupUserTestRouter()
	router.Use(addActiveProfileMiddleware("u1"))
	router.POST("/vitals/measure/temperature", controller.MeasureTemperature)

	req := httptest.NewRequest("POST", "/vitals/measure/temperature", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	temp := response["data"].(map[string]interface{})["temperature"].(float64)
	assert.GreaterOrEqual(t, temp, 36.5)
	assert.LessOrEqual(t, temp, 37.5)

	vitals, err := snapshots.Get("u1")
	assert.NoError(t, err)
	assert.NotNil(t, vitals.Temperature)
}

func TestMeasureWithoutActiveProfile(t *testing.T) {
	controller, _, _ := setupVitalsControllerWithMocks()

	router := setupUserTestRouter()
	router.POST("/vitals/measure/heart-rate", controller.MeasureHeartRate)

	req := httptest.NewRequest("POST", "/vitals/measure/heart-rate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveRecordEmptySnapshot(t *testing.T) {
	controller, mockRecords, _ := setupVitalsControllerWithMocks()

	router := setupUserTestRouter()
	router.Use(addActiveProfileMiddleware("u1"))
	router.POST("/vitals/records", controller.SaveRecord)

	req := httptest.NewRequest("POST", "/vitals/records", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["message"], "Nothing to save")

	mockRecords.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSaveRecordAfterMeasuring(t *testing.T) {
	controller, mockRecords, snapshots := setupVitalsControllerWithMocks()
	mockRecords.On("Create", mock.AnythingOfType("*models.VitalSignsRecord")).Return(nil)

	temp := 36.9
	assert.NoError(t, snapshots.Set("u1", models.SimulatedVitals{Temperature: &temp}))

	router := setupUserTestRouter()
	router.Use(addActiveProfileMiddleware("u1"))
	router.POST("/vitals/records", controller.SaveRecord)

	req := httptest.NewRequest("POST", "/vitals/records", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, 36.9, data["temperature"])
	assert.NotEmpty(t, data["id"])

	mockRecords.AssertExpectations(t)
}

func TestListRecords(t *testing.T) {
	controller, mockRecords, _ := setupVitalsControllerWithMocks()
	hr := 72
	mockRecords.On("FindAllByUserID", "u1").Return([]models.VitalSignsRecord{
		{ID: "r2", UserID: "u1", HeartRate: &hr},
		{ID: "r1", UserID: "u1", HeartRate: &hr},
	}, nil)

	router := setupUserTestRouter()
	router.Use(addActiveProfileMiddleware("u1"))
	router.GET("/vitals/records", controller.ListRecords)

	req := httptest.NewRequest("GET", "/vitals/records", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
	assert.Equal(t, "r2", data[0].(map[string]interface{})["id"])

	mockRecords.AssertExpectations(t)
}

func TestResetCurrentVitals(t *testing.T) {
	controller, _, snapshots := setupVitalsControllerWithMocks()

	temp := 36.9
	assert.NoError(t, snapshots.Set("u1", models.SimulatedVitals{Temperature: &temp}))

	router := setupUserTestRouter()
	router.Use(addActiveProfileMiddleware("u1"))
	router.DELETE("/vitals/current", controller.ResetCurrentVitals)

	req := httptest.NewRequest("DELETE", "/vitals/current", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	vitals, err := snapshots.Get("u1")
	assert.NoError(t, err)
	assert.True(t, vitals.IsEmpty())
}
