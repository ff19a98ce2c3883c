//
// accesslog.go
// Distributed under terms of the MIT license.
//

package ember

import (
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/emberweb/ember/logv"
)

// AccessLog is one persisted request record, written asynchronously by a
// gormSink after the response has already been sent — a slow database must
// never add latency to the client-facing response path.
type AccessLog struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	CreatedAt time.Time `json:"created_at"`

	RequestID  string `json:"request_id" gorm:"index"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	Status     int    `json:"status"`
	RemoteAddr string `json:"remote_addr"`
	DurationUs int64  `json:"duration_us"`
}

func (m *AccessLog) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = strings.ReplaceAll(uuid.New().String(), "-", "")
	}
	return nil
}

// AccessLogSink receives one record per completed request. Record must not
// block the caller for any meaningful amount of time.
type AccessLogSink interface {
	Record(entry AccessLog)
	Close()
}

// noopSink is installed when Config.AccessLogDriver is empty.
type noopSink struct{}

func (noopSink) Record(AccessLog) {}
func (noopSink) Close()           {}

// gormSink fans every Record call out onto a buffered channel drained by a
// single background goroutine, so a slow or unavailable database degrades
// to dropped log entries rather than stalled requests.
type gormSink struct {
	db   *gorm.DB
	ch   chan AccessLog
	done chan struct{}
}

func newAccessLogSink(driver, dsn string) (AccessLogSink, error) {
	if driver == "" {
		return noopSink{}, nil
	}

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, NewError("unsupported access log driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&AccessLog{}); err != nil {
		return nil, err
	}

	s := &gormSink{db: db, ch: make(chan AccessLog, 256), done: make(chan struct{})}
	go s.run()
	return s, nil
}

func (s *gormSink) run() {
	defer close(s.done)
	for entry := range s.ch {
		if err := s.db.Create(&entry).Error; err != nil {
			logv.WithNoCaller.Warn().Err(err).Msg("access log write failed")
		}
	}
}

func (s *gormSink) Record(entry AccessLog) {
	select {
	case s.ch <- entry:
	default:
		logv.WithNoCaller.Warn().Str("request_id", entry.RequestID).Msg("access log buffer full, dropping entry")
	}
}

func (s *gormSink) Close() {
	close(s.ch)
	<-s.done
}
