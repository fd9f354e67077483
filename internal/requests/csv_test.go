package requests

import (
	"strings"
	"testing"

	"cpu-scheduler/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []core.Process
		wantErr error
	}{
		{
			name:  "arrival and burst",
			input: "# arrival,burst\n0,5\n1, 3\n",
			want:  []core.Process{{ProcessId: 1, ArrivalTime: 0, BurstTime: 5}, {ProcessId: 2, ArrivalTime: 1, BurstTime: 3}},
		},
		{
			name:  "explicit ids",
			input: "7,0,5\n3,2,1\n",
			want:  []core.Process{{ProcessId: 7, ArrivalTime: 0, BurstTime: 5}, {ProcessId: 3, ArrivalTime: 2, BurstTime: 1}},
		},
		{
			name:    "not an integer",
			input:   "0,five\n",
			wantErr: core.ErrInputParse,
		},
		{
			name:    "wrong field count",
			input:   "1,2,3,4\n",
			wantErr: core.ErrInputParse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
