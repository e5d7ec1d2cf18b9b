package validation

import (
	"testing"

	"waypoint/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestStruct_MilestoneUpdate(t *testing.T) {
	bad := models.Category("cooking")
	err := Struct(models.MilestoneUpdate{Category: &bad})
	assert.True(t, models.IsCode(err, models.CodeValidation))

	good := models.CategoryStudy
	assert.NoError(t, Struct(models.MilestoneUpdate{Category: &good}))
}

func TestStruct_DailyGoalMoodRange(t *testing.T) {
	mood := 9
	err := Struct(models.DailyGoalUpdate{Mood: &mood})
	assert.True(t, models.IsCode(err, models.CodeValidation))

	mood = 5
	assert.NoError(t, Struct(models.DailyGoalUpdate{Mood: &mood}))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2024-06-01"))
	assert.Error(t, ValidateDate("06/01/2024"))
	assert.Error(t, ValidateDate("2024-6-1"))
	assert.Error(t, ValidateDate(""))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}
