package mqtt

import (
	"encoding/json"
	"testing"

	"github.com/nerrad567/zcl-config-core/internal/infrastructure/config"
)

func testMQTTConfig() config.MQTTConfig {
	return config.MQTTConfig{
		Enabled: true,
		Broker: config.MQTTBrokerConfig{
			Host:     "broker.local",
			Port:     1883,
			ClientID: "zclconf-test",
		},
		QoS: 1,
		Reconnect: config.MQTTReconnectConfig{
			InitialDelay: 1,
			MaxDelay:     60,
		},
	}
}

func TestBuildClientOptions(t *testing.T) {
	t.Run("plain tcp broker", func(t *testing.T) {
		opts := buildClientOptions(testMQTTConfig())

		if len(opts.Servers) != 1 {
			t.Fatalf("got %d servers, want 1", len(opts.Servers))
		}
		if got := opts.Servers[0].String(); got != "tcp://broker.local:1883" {
			t.Errorf("broker URL = %q, want %q", got, "tcp://broker.local:1883")
		}
		if opts.ClientID != "zclconf-test" {
			t.Errorf("ClientID = %q, want %q", opts.ClientID, "zclconf-test")
		}
		if opts.Username != "" {
			t.Errorf("Username = %q, want empty", opts.Username)
		}
		if !opts.AutoReconnect {
			t.Error("AutoReconnect = false, want true")
		}
		if !opts.CleanSession {
			t.Error("CleanSession = false, want true")
		}
	})

	t.Run("tls broker", func(t *testing.T) {
		cfg := testMQTTConfig()
		cfg.Broker.TLS = true
		cfg.Broker.Port = 8883

		opts := buildClientOptions(cfg)
		if got := opts.Servers[0].String(); got != "ssl://broker.local:8883" {
			t.Errorf("broker URL = %q, want %q", got, "ssl://broker.local:8883")
		}
		if opts.TLSConfig == nil {
			t.Error("TLSConfig not set for TLS broker")
		}
	})

	t.Run("credentials", func(t *testing.T) {
		cfg := testMQTTConfig()
		cfg.Auth.Username = "zcluser"
		cfg.Auth.Password = "secret"

		opts := buildClientOptions(cfg)
		if opts.Username != "zcluser" {
			t.Errorf("Username = %q, want %q", opts.Username, "zcluser")
		}
		if opts.Password != "secret" {
			t.Errorf("Password = %q, want %q", opts.Password, "secret")
		}
	})
}

func TestConfigureLWT(t *testing.T) {
	opts := buildClientOptions(testMQTTConfig())
	configureLWT(opts, "zclconf-test")

	if !opts.WillEnabled {
		t.Fatal("will not enabled")
	}
	if opts.WillTopic != "zclconf/system/status" {
		t.Errorf("WillTopic = %q, want %q", opts.WillTopic, "zclconf/system/status")
	}
	if opts.WillQos != 1 {
		t.Errorf("WillQos = %d, want 1", opts.WillQos)
	}
	if !opts.WillRetained {
		t.Error("WillRetained = false, want true")
	}

	var payload map[string]string
	if err := json.Unmarshal(opts.WillPayload, &payload); err != nil {
		t.Fatalf("will payload is not valid JSON: %v", err)
	}
	if payload["status"] != "offline" {
		t.Errorf("status = %q, want offline", payload["status"])
	}
	if payload["client_id"] != "zclconf-test" {
		t.Errorf("client_id = %q, want zclconf-test", payload["client_id"])
	}
}

func TestStatusPayloads(t *testing.T) {
	var online map[string]string
	if err := json.Unmarshal([]byte(buildOnlinePayload("c1")), &online); err != nil {
		t.Fatalf("online payload is not valid JSON: %v", err)
	}
	if online["status"] != "online" || online["client_id"] != "c1" {
		t.Errorf("online payload = %v", online)
	}
	if online["timestamp"] == "" {
		t.Error("online payload missing timestamp")
	}

	var offline map[string]string
	if err := json.Unmarshal([]byte(buildOfflinePayload("c1")), &offline); err != nil {
		t.Fatalf("offline payload is not valid JSON: %v", err)
	}
	if offline["status"] != "offline" || offline["reason"] != "graceful_shutdown" {
		t.Errorf("offline payload = %v", offline)
	}
}
