package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	amqp "github.com/rabbitmq/amqp091-go"
	"google.golang.org/protobuf/proto"

	"aquamon.dev/aquamon/pkg/telemetry"
)

// postJSON posts a JSON body and decodes the JSON response.
func postJSON(path, token string, body any) (int, map[string]any) {
	data, err := json.Marshal(body)
	Expect(err).NotTo(HaveOccurred())

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(data))
	Expect(err).NotTo(HaveOccurred())
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	Expect(err).NotTo(HaveOccurred())
	defer func() { _ = resp.Body.Close() }()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func getJSON(path, token string) (int, map[string]any) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	Expect(err).NotTo(HaveOccurred())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	Expect(err).NotTo(HaveOccurred())
	defer func() { _ = resp.Body.Close() }()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func publishReading(ctx context.Context, reading *telemetry.WaterReading) {
	body, err := proto.Marshal(reading)
	Expect(err).NotTo(HaveOccurred())

	err = mqChannel.PublishWithContext(
		ctx,
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/octet-stream",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	Expect(err).NotTo(HaveOccurred())
}

var _ = Describe("Pipeline E2E", func() {
	It("should serve health on the API", func() {
		Eventually(func() int {
			code, _ := getJSON("/health", "")
			return code
		}, 10*time.Second, 500*time.Millisecond).Should(Equal(http.StatusOK))
	})

	It("should run the full account, aquarium, and telemetry flow", func() {
		ctx := context.Background()

		email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())

		// Register and log in.
		code, body := postJSON("/auth/register/", "", map[string]any{
			"username": "e2e-user",
			"email":    email,
			"password": "secret",
		})
		Expect(code).To(Equal(http.StatusOK))
		Expect(body["msg"]).To(Equal("User created successfully"))

		code, body = postJSON("/auth/login/", "", map[string]any{
			"email":    email,
			"password": "secret",
		})
		Expect(code).To(Equal(http.StatusOK))
		token, ok := body["access_token"].(string)
		Expect(ok).To(BeTrue())
		userID := int64(body["user_id"].(float64))

		// Create an aquarium with two fish.
		code, body = postJSON("/aqu/creation/", token, map[string]any{
			"aquarium_name": "E2E tank",
			"fish_data":     []map[string]any{{"id_cat": 1}, {"id_cat": 2}},
		})
		Expect(code).To(Equal(http.StatusCreated))
		Expect(body["msg"]).To(Equal("Aquarium created successfully"))

		code, body = postJSON("/aqu/get", token, nil)
		Expect(code).To(Equal(http.StatusOK))
		Expect(body["name"]).To(Equal("E2E tank"))
		aquariumID := int64(body["aquarium_id"].(float64))

		// Publish two readings a day apart through the ingest pipeline.
		now := time.Now().UTC()
		publishReading(ctx, &telemetry.WaterReading{
			AquariumId:  aquariumID,
			UserId:      userID,
			Ph:          7.0,
			Temperature: 25.0,
			Luminosity:  500,
			Turbidity:   2.0,
			Timestamp:   now.Add(-24 * time.Hour).Unix(),
		})
		publishReading(ctx, &telemetry.WaterReading{
			AquariumId:  aquariumID,
			UserId:      userID,
			Ph:          7.35,
			Temperature: 24.0,
			Luminosity:  520,
			Turbidity:   2.1,
			Timestamp:   now.Unix(),
		})

		// The card endpoint needs both readings persisted.
		Eventually(func() map[string]any {
			_, cardBody := getJSON("/card/aquadata", token)
			return cardBody
		}, 30*time.Second, 500*time.Millisecond).Should(HaveKey("ph"))

		code, body = getJSON("/card/aquadata", token)
		Expect(code).To(Equal(http.StatusOK))

		ph, ok := body["ph"].(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(ph["last_value"]).To(BeNumerically("~", 7.35, 0.001))
		Expect(ph["difference_j1"]).To(BeNumerically("~", 5.0, 0.001))

		// The chart endpoint buckets the same readings by day.
		code, body = getJSON("/chart/aquadata", token)
		Expect(code).To(Equal(http.StatusOK))
		dataPH, ok := body["data_ph"].(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(dataPH["labels"].([]any)).To(HaveLen(2))
	})

	It("should reject API access without a token", func() {
		code, body := getJSON("/fish/all", "")
		Expect(code).To(Equal(http.StatusUnauthorized))
		Expect(body["msg"]).To(Equal("Missing Authorization Header"))
	})
})
