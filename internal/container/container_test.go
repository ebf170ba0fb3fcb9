package container

import (
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/go-ddd-resource-api/pkg/helpers"
)

func TestBackends_Enabled(t *testing.T) {
	assert.Empty(t, Backends{}.Enabled())
	assert.Equal(t, []string{"gcs", "rabbitmq"}, Backends{Storage: &storage.Client{}, Mail: &helpers.RabbitPublisher{}}.Enabled())
}

func TestGetJWT_FallsBackToLastConstructed(t *testing.T) {
	SetJWT(nil)
	m := helpers.NewJWTManager("a", "r", 0, 0)
	assert.Same(t, m, GetJWT())

	own := helpers.NewJWTManager("a2", "r2", 0, 0)
	SetJWT(m)
	assert.Same(t, m, GetJWT())
	assert.NotSame(t, own, GetJWT())
	SetJWT(nil)
}
