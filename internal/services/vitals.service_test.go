package services_test

import (
	"testing"

	"biomonitor/internal/cache"
	"biomonitor/internal/models"
	"biomonitor/internal/services"
	"biomonitor/internal/simulation"

	"github.com/stretchr/testify/assert"
)

func newVitalsService() (*services.VitalsService, *fakeRecordRepo, *cache.MemorySnapshotStore) {
	records := &fakeRecordRepo{}
	snapshots := cache.NewMemorySnapshotStore()
	return services.NewVitalsService(snapshots, records, nil), records, snapshots
}

func TestMeasureTemperatureUpdatesSnapshot(t *testing.T) {
	svc, _, snapshots := newVitalsService()

	temp, err := svc.MeasureTemperature("user-1")
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, temp, 36.5)
	assert.LessOrEqual(t, temp, 37.5)

	vitals, err := snapshots.Get("user-1")
	assert.NoError(t, err)
	assert.NotNil(t, vitals.Temperature)
	assert.Equal(t, temp, *vitals.Temperature)
}

func TestRemeasuringOverwritesField(t *testing.T) {
	svc, _, _ := newVitalsService()

	_, err := svc.MeasureHeartRate("user-1")
	assert.NoError(t, err)
	second, err := svc.MeasureHeartRate("user-1")
	assert.NoError(t, err)

	vitals, err := svc.CurrentSnapshot("user-1")
	assert.NoError(t, err)
	assert.Equal(t, second, *vitals.HeartRate)
}

func TestMeasurementsAccumulateInSnapshot(t *testing.T) {
	svc, _, _ := newVitalsService()

	_, err := svc.MeasureTemperature("user-1")
	assert.NoError(t, err)
	_, err = svc.MeasureHeartRate("user-1")
	assert.NoError(t, err)
	_, err = svc.MeasureECG("user-1")
	assert.NoError(t, err)

	vitals, err := svc.CurrentSnapshot("user-1")
	assert.NoError(t, err)
	assert.NotNil(t, vitals.Temperature)
	assert.NotNil(t, vitals.HeartRate)
	assert.Len(t, vitals.ECGData, 33)
}

func TestSaveRecordRoundTrip(t *testing.T) {
	svc, _, _ := newVitalsService()

	temp, err := svc.MeasureTemperature("user-1")
	assert.NoError(t, err)
	hr, err := svc.MeasureHeartRate("user-1")
	assert.NoError(t, err)

	record, err := svc.SaveRecord("user-1")
	assert.NoError(t, err)
	assert.NotNil(t, record)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, temp, *record.Temperature)
	assert.Equal(t, hr, *record.HeartRate)
	assert.Empty(t, record.ECGData)
	assert.Empty(t, record.Abnormalities)
	assert.NotNil(t, record.Abnormalities)

	records, err := svc.ListRecords("user-1")
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
}

func TestSaveRecordEmptySnapshotIsNoOp(t *testing.T) {
	svc, _, _ := newVitalsService()

	record, err := svc.SaveRecord("user-1")
	assert.NoError(t, err)
	assert.Nil(t, record)

	records, err := svc.ListRecords("user-1")
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveRecordWithoutUserIsNoOp(t *testing.T) {
	svc, records, _ := newVitalsService()

	record, err := svc.SaveRecord("")
	assert.NoError(t, err)
	assert.Nil(t, record)
	assert.Empty(t, records.records)
}

func TestSaveRecordKeepsSnapshot(t *testing.T) {
	svc, _, _ := newVitalsService()

	_, err := svc.MeasureTemperature("user-1")
	assert.NoError(t, err)

	_, err = svc.SaveRecord("user-1")
	assert.NoError(t, err)

	// The transient snapshot survives a save; only an explicit reset clears it
	vitals, err := svc.CurrentSnapshot("user-1")
	assert.NoError(t, err)
	assert.NotNil(t, vitals.Temperature)
}

func TestResetSnapshotLeavesHistory(t *testing.T) {
	svc, _, _ := newVitalsService()

	_, err := svc.MeasureTemperature("user-1")
	assert.NoError(t, err)
	_, err = svc.SaveRecord("user-1")
	assert.NoError(t, err)

	assert.NoError(t, svc.ResetSnapshot("user-1"))

	vitals, err := svc.CurrentSnapshot("user-1")
	assert.NoError(t, err)
	assert.True(t, vitals.IsEmpty())

	records, err := svc.ListRecords("user-1")
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestListRecordsNewestFirst(t *testing.T) {
	svc, _, _ := newVitalsService()

	var ids []string
	for i := 0; i < 3; i++ {
		_, err := svc.MeasureHeartRate("user-1")
		assert.NoError(t, err)
		record, err := svc.SaveRecord("user-1")
		assert.NoError(t, err)
		ids = append(ids, record.ID)
	}

	records, err := svc.ListRecords("user-1")
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, ids[2], records[0].ID)
	assert.Equal(t, ids[1], records[1].ID)
	assert.Equal(t, ids[0], records[2].ID)
}

func TestRecordListsAreKeyedPerUser(t *testing.T) {
	svc, _, _ := newVitalsService()

	_, err := svc.MeasureTemperature("user-1")
	assert.NoError(t, err)
	_, err = svc.SaveRecord("user-1")
	assert.NoError(t, err)

	records, err := svc.ListRecords("user-2")
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestSavedRecordCarriesNormalVerdict(t *testing.T) {
	svc, _, _ := newVitalsService()

	_, err := svc.MeasureECG("user-1")
	assert.NoError(t, err)

	record, err := svc.SaveRecord("user-1")
	assert.NoError(t, err)
	assert.Equal(t, models.StringSlice{}, record.Abnormalities)

	report := simulation.CheckVitals(models.SimulatedVitals{ECGData: record.ECGData})
	assert.False(t, report.IsAnomalous)
}

// Register Ana Pérez, measure, save, list: the full measurement flow.
func TestMeasurementScenario(t *testing.T) {
	profileSvc, _, _ := newProfileService()
	vitalsSvc, _, _ := newVitalsService()

	user, err := profileSvc.RegisterProfile(services.RegisterProfileInput{
		Name:      "Ana",
		Surname:   "Pérez",
		BirthDate: "1990-05-01",
	})
	assert.NoError(t, err)

	active, err := profileSvc.GetActive()
	assert.NoError(t, err)
	assert.Equal(t, user.ID, active.ID)

	temp, err := vitalsSvc.MeasureTemperature(active.ID)
	assert.NoError(t, err)
	hr, err := vitalsSvc.MeasureHeartRate(active.ID)
	assert.NoError(t, err)

	_, err = vitalsSvc.SaveRecord(active.ID)
	assert.NoError(t, err)

	records, err := vitalsSvc.ListRecords(active.ID)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, temp, *records[0].Temperature)
	assert.Equal(t, hr, *records[0].HeartRate)
	assert.Empty(t, records[0].ECGData)
	assert.Empty(t, records[0].Abnormalities)
}
