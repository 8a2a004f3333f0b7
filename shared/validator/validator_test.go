package validator_test

import (
	"net/http"
	"slotbook/shared/failure"
	"slotbook/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotQuery struct {
	Date     string `json:"date"     validate:"required,calendar_date"`
	Duration int    `json:"duration" validate:"required,gte=1,lte=24"`
}

type bookingBody struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Start  string `json:"start"   validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Token  string `json:"token"   validate:"omitempty,max=64"`
	At     string `json:"at"      validate:"omitempty,clock"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    slotQuery
		wantMsg string
	}{
		{name: "valid", data: slotQuery{Date: "2026-10-19", Duration: 2}},
		{name: "missing date", data: slotQuery{Duration: 2}, wantMsg: "date is required"},
		{name: "bad date", data: slotQuery{Date: "19.10.2026", Duration: 2}, wantMsg: "date must be a date in YYYY-MM-DD format"},
		{name: "impossible date", data: slotQuery{Date: "2026-02-30", Duration: 2}, wantMsg: "date must be a date in YYYY-MM-DD format"},
		{name: "duration too long", data: slotQuery{Date: "2026-10-19", Duration: 25}, wantMsg: "duration must be less than or equal to 24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		wantErr  bool
	}{
		{name: "valid", jsonBody: `{"user_id": 42, "start": "2026-10-19T10:00:00+03:00"}`},
		{name: "valid with token", jsonBody: `{"user_id": 42, "start": "2026-10-19T10:00:00Z", "token": "dur:2", "at": "10:00"}`},
		{name: "zero user", jsonBody: `{"user_id": 0, "start": "2026-10-19T10:00:00+03:00"}`, wantErr: true},
		{name: "negative user", jsonBody: `{"user_id": -5, "start": "2026-10-19T10:00:00+03:00"}`, wantErr: true},
		{name: "start without zone", jsonBody: `{"user_id": 42, "start": "2026-10-19T10:00:00"}`, wantErr: true},
		{name: "token too long", jsonBody: `{"user_id": 42, "start": "2026-10-19T10:00:00Z", "token": "` + strings.Repeat("x", 65) + `"}`, wantErr: true},
		{name: "bad clock", jsonBody: `{"user_id": 42, "start": "2026-10-19T10:00:00Z", "at": "25:00"}`, wantErr: true},
		{name: "malformed JSON", jsonBody: `{"user_id":}`, wantErr: true},
		{name: "empty JSON", jsonBody: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingBody

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2026-10-19", "calendar_date"))
	assert.Error(t, validator.ValidateVar("tomorrow", "calendar_date"))
	assert.NoError(t, validator.ValidateVar("16:00", "clock"))
	assert.Error(t, validator.ValidateVar("", "required"))
	assert.Error(t, validator.ValidateVar("invalid", "oneof=file postgres s3"))
}
