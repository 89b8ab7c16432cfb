package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-assist/domain"
)

func TestMessage(t *testing.T) {
	event := change(domain.TableApplications, "tenant-1")
	event.Action = domain.ActionInsert
	event.Record = map[string]string{"step": "details"}

	msg, err := message(event)
	require.NoError(t, err)

	assert.Equal(t, []byte("tenant-1"), msg.Key)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "table", msg.Headers[0].Key)
	assert.Equal(t, domain.TableApplications, string(msg.Headers[0].Value))
	assert.Equal(t, string(domain.ActionInsert), string(msg.Headers[1].Value))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "tenant-1", decoded["key"])
}

func TestMessage_UnencodableRecord(t *testing.T) {
	event := change(domain.TableSchedules, "a")
	event.Record = make(chan int)

	_, err := message(event)
	assert.Error(t, err)
}
