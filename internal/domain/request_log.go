package domain

import "time"

// RequestLog is one observed HTTP request, written by the logging
// middleware after the response is sent.
type RequestLog struct {
	ID           int64     `json:"-" gorm:"primaryKey"`
	Method       string    `json:"method" gorm:"size:10;not null"`
	Route        string    `json:"route" gorm:"size:200;not null"`
	StatusCode   int       `json:"status_code" gorm:"not null"`
	ResponseTime int64     `json:"response_time" gorm:"not null"` // milliseconds
	IP           string    `json:"ip" gorm:"size:45;not null"`
	UserID       *int64    `json:"user_id,omitempty" gorm:"index"`
	Feature      string    `json:"feature" gorm:"size:20;index"`
	Error        string    `json:"error,omitempty" gorm:"size:50"`
	Timestamp    time.Time `json:"timestamp" gorm:"index;not null"`
}

func (RequestLog) TableName() string { return "request_logs" }
