// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ledgerbook/backend/config"
	"github.com/ledgerbook/backend/internal/infra/dependency"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
	"github.com/ledgerbook/backend/test/integration/mock"
)

type testContext struct {
	headers  map[string]string
	client   *http.Client
	response *http.Response
	body     []byte
	lastID   string
}

var setupOnce sync.Once
var testServer *httptest.Server
var testDB *mock.Db
var testRedis *redis.Client

func setup() {
	setupOnce.Do(func() {
		_ = os.Setenv("ENV", "test")
		gin.SetMode(gin.TestMode)

		testDB = mock.NewDb(map[string]any{
			"bank_accounts":           &model.BankAccountModel{},
			"cash_entries":            &model.CashEntryModel{},
			"company_bills":           &model.CompanyBillModel{},
			"buyer_bills":             &model.BuyerBillModel{},
			"salaries":                &model.SalaryModel{},
			"other_transactions":      &model.OtherTransactionModel{},
			"other_types":             &model.OtherTypeModel{},
			"invoices":                &model.InvoiceModel{},
			"balance_sheet_snapshots": &model.BalanceSheetSnapshotModel{},
		})
		testRedis = mock.NewRedis()

		injector := dependency.NewInjector(config.Load(), testDB.DbConn, testRedis)
		testServer = httptest.NewServer(injector.Router.Setup("test"))
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(setup)
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	setup()

	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		test.headers = make(map[string]string)
		test.response = nil
		test.body = nil
		test.lastID = ""
		if err := testDB.ClearDB(); err != nil {
			return c, err
		}
		return c, mock.ClearRedis(testRedis)
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func (t *testContext) theAPIServerIsRunning() error {
	if testServer == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, endpoint string) error {
	return t.send(method, endpoint, nil)
}

func (t *testContext) iSendARequestToWithBody(method, endpoint string, body *godog.DocString) error {
	return t.send(method, endpoint, bytes.NewBufferString(body.Content))
}

func (t *testContext) send(method, endpoint string, body io.Reader) error {
	// {last_id} resolves to the id of the most recently created resource.
	endpoint = strings.ReplaceAll(endpoint, "{last_id}", t.lastID)

	req, err := http.NewRequest(method, testServer.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	t.response = resp
	t.body, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var payload map[string]any
	if json.Unmarshal(t.body, &payload) == nil {
		if id, ok := payload["id"].(string); ok {
			t.lastID = id
		}
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, t.response.StatusCode, string(t.body))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	var js json.RawMessage
	if err := json.Unmarshal(t.body, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.body), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(t.body))
	}
	return nil
}

// theResponseFieldShouldBe asserts a response field by dot-separated path.
func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q. Body: %s", field, expected, actual, string(t.body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookupField(field)
	return err
}

func (t *testContext) lookupField(field string) (any, error) {
	var data any
	if err := json.Unmarshal(t.body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(field, ".") {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object in response", field)
		}
		current, ok = object[part]
		if !ok {
			return nil, fmt.Errorf("field %q not found in response. Body: %s", field, string(t.body))
		}
	}
	return current, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(expected int, table string) error {
	targetModel, ok := testDB.GetModel(table)
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	var count int64
	if err := testDB.DbConn.Model(targetModel).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rows in %q: %w", table, err)
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d objects in %q, found %d", expected, table, count)
	}
	return nil
}
