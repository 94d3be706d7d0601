package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	require.Nil(t, CSV(""))
	require.Equal(t, []string{"localhost:9092"}, CSV("localhost:9092"))
	require.Equal(t, []string{"a:9092", "b:9092"}, CSV("a:9092, b:9092"))
	require.Equal(t, []string{"a:9092"}, CSV("a:9092,,"))
}

func TestEnvDefault(t *testing.T) {
	t.Setenv("SMART_SHOP_TEST_STR", "")
	require.Equal(t, "fallback", EnvDefault("SMART_SHOP_TEST_STR", "fallback"))

	t.Setenv("SMART_SHOP_TEST_STR", "set")
	require.Equal(t, "set", EnvDefault("SMART_SHOP_TEST_STR", "fallback"))
}

func TestEnvIntDefault(t *testing.T) {
	t.Setenv("SMART_SHOP_TEST_INT", "")
	require.Equal(t, 3000, EnvIntDefault("SMART_SHOP_TEST_INT", 3000))

	t.Setenv("SMART_SHOP_TEST_INT", "8080")
	require.Equal(t, 8080, EnvIntDefault("SMART_SHOP_TEST_INT", 3000))

	t.Setenv("SMART_SHOP_TEST_INT", "not-a-number")
	require.Equal(t, 3000, EnvIntDefault("SMART_SHOP_TEST_INT", 3000))
}

func TestServerless(t *testing.T) {
	require.False(t, Config{}.Serverless())
	require.False(t, Config{DeployMode: "server"}.Serverless())
	require.True(t, Config{DeployMode: "serverless"}.Serverless())
	require.True(t, Config{DeployMode: "SERVERLESS"}.Serverless())
}
