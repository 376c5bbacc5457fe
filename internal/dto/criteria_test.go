package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onecx/announcement-console/internal/models"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestToRequestOmitsEmptyFields(t *testing.T) {
	req := SearchCriteria{}.ToRequest()
	assert.Empty(t, req.Title)
	assert.Empty(t, req.WorkspaceName)
	assert.Empty(t, req.ProductName)
	assert.Empty(t, req.Priority)
	assert.Empty(t, req.Status)
	assert.Empty(t, req.Type)
	assert.Nil(t, req.StartDateFrom)
	assert.Nil(t, req.StartDateTo)
}

func TestToRequestNormalizesWorkspace(t *testing.T) {
	cases := map[string]string{
		"":          "",
		"all":       "",
		"All":       "",
		"ALL":       "",
		"  ":        "",
		"workspace": "workspace",
	}
	for input, expected := range cases {
		req := SearchCriteria{WorkspaceName: input}.ToRequest()
		assert.Equal(t, expected, req.WorkspaceName, "input %q", input)
	}
}

func TestToRequestNarrowsMultiSelectsToFirst(t *testing.T) {
	criteria := SearchCriteria{
		Priorities: []models.AnnouncementPriority{models.AnnouncementPriorityLow, models.AnnouncementPriorityImportant},
		Statuses:   []models.AnnouncementStatus{models.AnnouncementStatusActive, models.AnnouncementStatusInactive},
		Types:      []models.AnnouncementType{models.AnnouncementTypeEvent, models.AnnouncementTypeInfo},
	}
	req := criteria.ToRequest()
	assert.Equal(t, models.AnnouncementPriorityLow, req.Priority)
	assert.Equal(t, models.AnnouncementStatusActive, req.Status)
	assert.Equal(t, models.AnnouncementTypeEvent, req.Type)
}

func TestToRequestWidensSameDayRange(t *testing.T) {
	from := time.Date(2023, time.March, 7, 9, 30, 0, 0, time.UTC)
	to := time.Date(2023, time.March, 7, 18, 0, 0, 0, time.UTC)
	req := SearchCriteria{StartDateFrom: &from, StartDateTo: &to}.ToRequest()
	require.NotNil(t, req.StartDateFrom)
	require.NotNil(t, req.StartDateTo)
	assert.Equal(t, from, *req.StartDateFrom)
	assert.Equal(t, 3000, req.StartDateTo.Year())
}

func TestToRequestWidensOpenEndedRange(t *testing.T) {
	req := SearchCriteria{StartDateFrom: date(2023, time.March, 7)}.ToRequest()
	require.NotNil(t, req.StartDateTo)
	assert.Equal(t, 3000, req.StartDateTo.Year())
}

func TestToRequestKeepsDistinctDayRange(t *testing.T) {
	from := date(2023, time.March, 7)
	to := date(2023, time.April, 1)
	req := SearchCriteria{StartDateFrom: from, StartDateTo: to}.ToRequest()
	require.NotNil(t, req.StartDateFrom)
	require.NotNil(t, req.StartDateTo)
	assert.Equal(t, *from, *req.StartDateFrom)
	assert.Equal(t, *to, *req.StartDateTo)
}

func TestToRequestDropsRangeWithoutFrom(t *testing.T) {
	req := SearchCriteria{StartDateTo: date(2023, time.April, 1)}.ToRequest()
	assert.Nil(t, req.StartDateFrom)
	assert.Nil(t, req.StartDateTo)
}

func TestReset(t *testing.T) {
	criteria := SearchCriteria{
		Title:         "maintenance",
		WorkspaceName: "workspace",
		Priorities:    []models.AnnouncementPriority{models.AnnouncementPriorityImportant},
		StartDateFrom: date(2023, time.March, 7),
	}
	criteria.Reset()
	assert.Equal(t, SearchCriteria{}, criteria)
}
