package record

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/employee"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/period"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/record"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/database"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/validator"
	"github.com/hmaq1985-lang/overtime-system/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecordDB *database.DB

func recordTestInit(t *testing.T, ctx context.Context) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testRecordDB == nil {
		var err error
		testRecordDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
		require.NoError(t, postgresql.Migrate(ctx, testRecordDB))
	}

	_, err := testRecordDB.Exec(ctx,
		"TRUNCATE TABLE overtime_records, periods, employees RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func newRecordTestService() (record.RecordService, record.RecordRepository, period.PeriodRepository) {
	recordRepo := postgresql.NewRecordRepository(testRecordDB)
	employeeRepo := postgresql.NewEmployeeRepository(testRecordDB)
	periodRepo := postgresql.NewPeriodRepository(testRecordDB)
	return NewRecordService(recordRepo, employeeRepo, periodRepo), recordRepo, periodRepo
}

func seedRecordFixtures(t *testing.T, ctx context.Context, salary int64) (employeeID, periodID int64) {
	t.Helper()

	emp, err := postgresql.NewEmployeeRepository(testRecordDB).Create(ctx, employee.Employee{
		Name:     "سامر حمدان",
		JobTitle: "موظف",
		Salary:   decimal.NewFromInt(salary),
	})
	require.NoError(t, err)

	now := time.Now()
	p, err := postgresql.NewPeriodRepository(testRecordDB).Create(ctx, period.Period{
		Name:      "فترة السجلات",
		StartDate: now,
		EndDate:   now,
		Status:    period.PeriodStatusOpen,
		Year:      now.Year(),
	})
	require.NoError(t, err)

	return emp.ID, p.ID
}

func TestRecordService_Create_ComputesHoursAndAmount(t *testing.T) {
	ctx := context.Background()
	recordTestInit(t, ctx)
	svc, _, _ := newRecordTestService()
	employeeID, periodID := seedRecordFixtures(t, ctx, 240)

	created, err := svc.CreateRecord(ctx, record.CreateRecordRequest{
		EmployeeID: employeeID,
		Date:       "2026-08-29",
		StartTime:  "17:00",
		EndTime:    "19:00",
		Multiplier: decimal.RequireFromString("1.5"),
		Notes:      "صيانة طارئة",
	})
	require.NoError(t, err)

	// Salary 240 gives an hourly wage of exactly 1.000.
	assert.Equal(t, "2.000", created.Hours.StringFixed(3))
	assert.Equal(t, "3.000", created.Amount.StringFixed(3))
	assert.Equal(t, periodID, created.PeriodID)
	assert.Equal(t, "2026-08-29", created.Date)
}

func TestRecordService_Create_OvernightShift(t *testing.T) {
	ctx := context.Background()
	recordTestInit(t, ctx)
	svc, _, _ := newRecordTestService()
	employeeID, _ := seedRecordFixtures(t, ctx, 240)

	created, err := svc.CreateRecord(ctx, record.CreateRecordRequest{
		EmployeeID: employeeID,
		Date:       "2026-08-29",
		StartTime:  "22:00",
		EndTime:    "06:00",
		Multiplier: decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	assert.Equal(t, "8.000", created.Hours.StringFixed(3))
}

func TestRecordService_Create_NoOpenPeriod(t *testing.T) {
	ctx := context.Background()
	recordTestInit(t, ctx)
	svc, _, periodRepo := newRecordTestService()
	employeeID, periodID := seedRecordFixtures(t, ctx, 240)
	require.NoError(t, periodRepo.Close(ctx, periodID, time.Now()))

	_, err := svc.CreateRecord(ctx, record.CreateRecordRequest{
		EmployeeID: employeeID,
		Date:       "2026-08-29",
		StartTime:  "17:00",
		EndTime:    "19:00",
		Multiplier: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, period.ErrNoOpenPeriod)
}

func TestRecordService_Create_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	recordTestInit(t, ctx)
	svc, _, _ := newRecordTestService()
	seedRecordFixtures(t, ctx, 240)

	_, err := svc.CreateRecord(ctx, record.CreateRecordRequest{
		EmployeeID: 9999,
		Date:       "2026-08-29",
		StartTime:  "17:00",
		EndTime:    "19:00",
		Multiplier: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecordService_Create_MalformedTimes(t *testing.T) {
	ctx := context.Background()
	recordTestInit(t, ctx)
	svc, _, _ := newRecordTestService()
	employeeID, _ := seedRecordFixtures(t, ctx, 240)

	_, err := svc.CreateRecord(ctx, record.CreateRecordRequest{
		EmployeeID: employeeID,
		Date:       "2026-08-29",
		StartTime:  "بداية",
		EndTime:    "نهاية",
		Multiplier: decimal.NewFromInt(1),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestRecordService_List_OrderedByDateThenID(t *testing.T) {
	ctx := context.Background()
	recordTestInit(t, ctx)
	svc, _, _ := newRecordTestService()
	employeeID, periodID := seedRecordFixtures(t, ctx, 240)

	// Insert out of date order; the second row shares a date with the
	// third so insertion id breaks the tie.
	dates := []string{"2026-08-20", "2026-08-10", "2026-08-10"}
	for _, d := range dates {
		_, err := svc.CreateRecord(ctx, record.CreateRecordRequest{
			EmployeeID: employeeID,
			Date:       d,
			StartTime:  "17:00",
			EndTime:    "18:00",
			Multiplier: decimal.NewFromInt(1),
		})
		require.NoError(t, err)
	}

	listed, err := svc.ListRecords(ctx, record.RecordFilter{
		EmployeeID: &employeeID,
		PeriodID:   &periodID,
	})
	require.NoError(t, err)
	require.Len(t, listed, 3)

	assert.Equal(t, "2026-08-10", listed[0].Date)
	assert.Equal(t, "2026-08-10", listed[1].Date)
	assert.Equal(t, "2026-08-20", listed[2].Date)
	assert.Less(t, listed[0].ID, listed[1].ID)
}

func TestRecordService_List_PartialFilterReturnsAll(t *testing.T) {
	ctx := context.Background()
	recordTestInit(t, ctx)
	svc, _, _ := newRecordTestService()
	employeeID, _ := seedRecordFixtures(t, ctx, 240)

	_, err := svc.CreateRecord(ctx, record.CreateRecordRequest{
		EmployeeID: employeeID,
		Date:       "2026-08-29",
		StartTime:  "17:00",
		EndTime:    "18:00",
		Multiplier: decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	other := int64(123456)
	listed, err := svc.ListRecords(ctx, record.RecordFilter{EmployeeID: &other})
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestRecordService_Update_RecomputesDerivedValues(t *testing.T) {
	ctx := context.Background()
	recordTestInit(t, ctx)
	svc, _, _ := newRecordTestService()
	employeeID, _ := seedRecordFixtures(t, ctx, 240)

	created, err := svc.CreateRecord(ctx, record.CreateRecordRequest{
		EmployeeID: employeeID,
		Date:       "2026-08-29",
		StartTime:  "17:00",
		EndTime:    "19:00",
		Multiplier: decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	// A client payload carrying its own hours and amount; both fields
	// have no binding on the request type and are discarded.
	payload := []byte(`{
		"start_time": "17:00",
		"end_time": "21:00",
		"multiplier": "2",
		"hours": "999",
		"overtime_amount": "999",
		"notes": "تمديد الوردية"
	}`)
	var req record.UpdateRecordRequest
	require.NoError(t, json.Unmarshal(payload, &req))
	req.ID = created.ID

	updated, err := svc.UpdateRecord(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "4.000", updated.Hours.StringFixed(3))
	assert.Equal(t, "8.000", updated.Amount.StringFixed(3))
	assert.Equal(t, "تمديد الوردية", updated.Notes)
}

func TestRecordService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	recordTestInit(t, ctx)
	svc, _, _ := newRecordTestService()
	seedRecordFixtures(t, ctx, 240)

	_, err := svc.UpdateRecord(ctx, record.UpdateRecordRequest{
		ID:         7777,
		StartTime:  "17:00",
		EndTime:    "18:00",
		Multiplier: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, record.ErrRecordNotFound)
}

func TestRecordService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	recordTestInit(t, ctx)
	svc, _, _ := newRecordTestService()

	err := svc.DeleteRecord(ctx, 8888)
	assert.ErrorIs(t, err, record.ErrRecordNotFound)
}

func TestRecordService_Preview(t *testing.T) {
	// Preview never touches storage, so no repositories are needed.
	svc := NewRecordService(nil, nil, nil)

	resp, err := svc.Preview(context.Background(), record.PreviewRequest{
		StartTime:  "17:00",
		EndTime:    "19:00",
		HourlyWage: decimal.NewFromInt(10),
		Multiplier: decimal.RequireFromString("1.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2.000", resp.Hours.StringFixed(3))
	assert.Equal(t, "30.000", resp.Amount.StringFixed(3))
}
