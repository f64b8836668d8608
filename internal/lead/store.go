package lead

import (
	"context"
	"encoding/json"
	"time"

	"movebroker_backend/platform/config"
	"movebroker_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

// SlotVersion is the schema version written to every slot record.
const SlotVersion = 1

const slotKeyPrefix = "lead:slot:"

// slotRecord is the wire format of the shared lead slot. The size travels as
// a human label; ts is epoch milliseconds; the move date is ISO-8601.
type slotRecord struct {
	Version      int    `json:"version"`
	Intent       string `json:"intent"`
	FromZip      string `json:"fromZip"`
	ToZip        string `json:"toZip"`
	MoveDate     string `json:"moveDate,omitempty"`
	Size         string `json:"size"`
	HasCar       bool   `json:"hasCar"`
	NeedsPacking bool   `json:"needsPacking"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	FromCity     string `json:"fromCity,omitempty"`
	ToCity       string `json:"toCity,omitempty"`
	TS           int64  `json:"ts"`
}

// Store is the write-whole/read-once lead slot, one key per visitor session.
// Reads and writes are single whole-value Redis commands, so there is no
// partial-write race to guard against.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

func NewStore(rdb *redis.Client, cfg config.LeadStoreConfig, log *logger.Logger) *Store {
	return &Store{
		rdb: rdb,
		ttl: cfg.GetLeadSlotTTL(),
		log: log,
	}
}

func slotKey(sessionID string) string {
	return slotKeyPrefix + sessionID
}

// Write serializes the full MoveIntent and overwrites the session's slot
// wholesale. No merge with any prior value.
func (s *Store) Write(ctx context.Context, intent MoveIntent) error {
	record := slotRecord{
		Version:      SlotVersion,
		Intent:       string(intent.Intent),
		FromZip:      intent.FromZip,
		ToZip:        intent.ToZip,
		Size:         SizeLabelForCode(intent.HomeSize),
		HasCar:       intent.HasVehicle,
		NeedsPacking: intent.NeedsPacking,
		Email:        intent.Email,
		Phone:        intent.Phone,
		FromCity:     intent.FromCity,
		ToCity:       intent.ToCity,
		TS:           intent.CapturedAt.UnixMilli(),
	}
	if intent.MoveDate != nil {
		record.MoveDate = intent.MoveDate.Format(time.RFC3339)
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, slotKey(intent.SessionID), payload, s.ttl).Err(); err != nil {
		s.log.PersistenceError("slot write", err)
		return err
	}
	return nil
}

// ReadOnce consumes the session's slot: the value is returned and the slot
// cleared in one command. A missing or malformed slot yields a zero-value
// record with HomeSize "unset" — never an error. Legacy size labels are
// mapped back to internal codes.
func (s *Store) ReadOnce(ctx context.Context, sessionID string) MoveIntent {
	payload, err := s.rdb.GetDel(ctx, slotKey(sessionID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.PersistenceError("slot read", err)
		}
		return emptyRecord(sessionID)
	}

	var record slotRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		s.log.PersistenceError("slot decode", err)
		return emptyRecord(sessionID)
	}

	intent := MoveIntent{
		SessionID:    sessionID,
		Intent:       Intent(record.Intent),
		FromZip:      record.FromZip,
		ToZip:        record.ToZip,
		FromCity:     record.FromCity,
		ToCity:       record.ToCity,
		HomeSize:     SizeCodeForLabel(record.Size),
		HasVehicle:   record.HasCar,
		NeedsPacking: record.NeedsPacking,
		Email:        record.Email,
		Phone:        record.Phone,
	}
	if record.TS > 0 {
		intent.CapturedAt = time.UnixMilli(record.TS)
	}
	if record.MoveDate != "" {
		if parsed, err := time.Parse(time.RFC3339, record.MoveDate); err == nil {
			intent.MoveDate = &parsed
		}
	}
	return intent
}

func emptyRecord(sessionID string) MoveIntent {
	return MoveIntent{SessionID: sessionID, HomeSize: "unset"}
}

// Ping reports broker health for the readiness endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
