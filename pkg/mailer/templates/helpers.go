package templates

import (
	"fmt"
	"time"

	"github.com/oksasatya/go-ddd-resource-api/config"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithFeature(name string, level float64) Option {
	return func(d *EmailData) {
		d.FeatureName = name
		d.Level = level
	}
}

func newData(typ, email string, opts ...Option) EmailData {
	d := EmailData{Type: typ, Email: email}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewAccountCreatedData(email string, opts ...Option) map[string]any {
	return ToMap(newData(AccountCreated, email, opts...))
}

func NewSubscriptionStartedData(email, featureName string, level float64, opts ...Option) map[string]any {
	opts = append([]Option{WithFeature(featureName, level)}, opts...)
	return ToMap(newData(SubscriptionStarted, email, opts...))
}

// ApplyBranding fills the branding keys of a job's data from config
// without overriding values the producer already set.
func ApplyBranding(data map[string]any, cfg *config.Config) {
	if data == nil || cfg == nil {
		return
	}
	set := func(key, value string) {
		if v, ok := data[key]; !ok || fmt.Sprintf("%v", v) == "" {
			data[key] = value
		}
	}
	set("AppName", cfg.AppName)
	set("CompanyName", cfg.CompanyName)
	set("LogoURL", cfg.LogoURL)
	set("SupportURL", cfg.SupportURL)
	set("LoginURL", cfg.LoginURL)
}
