package airbyte

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/artie-labs/brickbyte/lib/config/constants"
	"github.com/artie-labs/brickbyte/lib/redact"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type MessageType string

const (
	Record           MessageType = "RECORD"
	State            MessageType = "STATE"
	Log              MessageType = "LOG"
	Trace            MessageType = "TRACE"
	ConnectionStatus MessageType = "CONNECTION_STATUS"
)

type Status string

const (
	Succeeded Status = "SUCCEEDED"
	Failed    Status = "FAILED"
)

type RecordMessage struct {
	Stream    string `json:"stream"`
	Namespace string `json:"namespace,omitempty"`
	// Data is kept exactly as it was received.
	Data      json.RawMessage `json:"data"`
	EmittedAt int64           `json:"emitted_at"`
}

// EmittedAtTime converts the epoch milliseconds into a UTC timestamp.
func (r RecordMessage) EmittedAtTime() time.Time {
	return time.UnixMilli(r.EmittedAt).UTC()
}

type ConnectionStatusMessage struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

type Message struct {
	Type             MessageType              `json:"type"`
	Record           *RecordMessage           `json:"record,omitempty"`
	State            json.RawMessage          `json:"state,omitempty"`
	ConnectionStatus *ConnectionStatusMessage `json:"connectionStatus,omitempty"`
}

func (m Message) LogFields() []any {
	fields := []any{slog.String("type", string(m.Type))}
	if m.Record != nil {
		fields = append(fields, slog.String("stream", m.Record.Stream), slog.Int64("emittedAt", m.Record.EmittedAt))
	}

	return fields
}

func ParseMessage(line []byte) (Message, error) {
	var msg Message
	if err := jsonAPI.Unmarshal(line, &msg); err != nil {
		return Message{}, fmt.Errorf("failed to parse message: %w", err)
	}

	msg.State = bytes.TrimSpace(msg.State)
	if msg.Type == Record {
		if msg.Record == nil {
			return Message{}, fmt.Errorf("record message is missing the record")
		}

		msg.Record.Data = bytes.TrimSpace(msg.Record.Data)
		if len(msg.Record.Data) == 0 {
			return Message{}, fmt.Errorf("record message for stream %q is missing data", msg.Record.Stream)
		}
	}

	return msg, nil
}

func NewConnectionStatus(err error) Message {
	status := &ConnectionStatusMessage{Status: Succeeded}
	if err != nil {
		status.Status = Failed
		status.Message = redact.ScrubError(err)
	}

	return Message{Type: ConnectionStatus, ConnectionStatus: status}
}

// Marshal returns the message as a single line.
func (m Message) Marshal() ([]byte, error) {
	return jsonAPI.Marshal(m)
}

type Stream struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace,omitempty"`
}

type ConfiguredStream struct {
	Stream              Stream             `json:"stream"`
	DestinationSyncMode constants.SyncMode `json:"destination_sync_mode"`
}

type ConfiguredCatalog struct {
	Streams []ConfiguredStream `json:"streams"`
}

func LoadCatalog(path string) (ConfiguredCatalog, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return ConfiguredCatalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}

	var catalog ConfiguredCatalog
	if err = jsonAPI.Unmarshal(contents, &catalog); err != nil {
		return ConfiguredCatalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}

	for _, stream := range catalog.Streams {
		switch stream.DestinationSyncMode {
		case constants.Append, constants.AppendDedup, constants.Overwrite:
		default:
			return ConfiguredCatalog{}, fmt.Errorf("stream %q has an unsupported sync mode: %q", stream.Stream.Name, stream.DestinationSyncMode)
		}
	}

	return catalog, nil
}
