package requests

import (
	"encoding/json"
	"testing"

	"cpu-scheduler/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRequests_Processes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []core.Process
		wantErr error
	}{
		{
			name: "explicit ids",
			body: `{"jobs":[{"process_id":4,"arrival_time":0,"burst_time":5},{"process_id":9,"arrival_time":1,"burst_time":3}]}`,
			want: []core.Process{{ProcessId: 4, ArrivalTime: 0, BurstTime: 5}, {ProcessId: 9, ArrivalTime: 1, BurstTime: 3}},
		},
		{
			name: "ids assigned in input order",
			body: `{"jobs":[{"arrival_time":3,"burst_time":2},{"arrival_time":0,"burst_time":1}]}`,
			want: []core.Process{{ProcessId: 1, ArrivalTime: 3, BurstTime: 2}, {ProcessId: 2, ArrivalTime: 0, BurstTime: 1}},
		},
		{
			name:    "fractional burst",
			body:    `{"jobs":[{"arrival_time":0,"burst_time":2.5}]}`,
			wantErr: core.ErrInputParse,
		},
		{
			name:    "missing arrival",
			body:    `{"jobs":[{"burst_time":2}]}`,
			wantErr: core.ErrInputParse,
		},
		{
			name: "negative arrival parses",
			body: `{"jobs":[{"arrival_time":-1,"burst_time":2}]}`,
			want: []core.Process{{ProcessId: 1, ArrivalTime: -1, BurstTime: 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var request ScheduleRequests
			require.NoError(t, json.Unmarshal([]byte(tt.body), &request))

			got, err := request.Processes()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheduleRequests_Quantum(t *testing.T) {
	var request ScheduleRequests
	q, err := request.Quantum(2)
	require.NoError(t, err)
	assert.Equal(t, 2, q)

	request.TimeQuantum = "4"
	q, err = request.Quantum(2)
	require.NoError(t, err)
	assert.Equal(t, 4, q)

	request.TimeQuantum = "1e3"
	_, err = request.Quantum(2)
	assert.ErrorIs(t, err, core.ErrInputParse)
}
