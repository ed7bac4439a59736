package agent

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"tabletop-server/internal/domain"
	"tabletop-server/pkg/api"
	"tabletop-server/pkg/logger"
	"tabletop-server/pkg/terrain"
)

// Клиент нарративного движка (внешний webhook).
// Один POST endpoint, маршрутизация по полю action в теле запроса.
// Повторов нет: любое восстановление - повторная отправка пользователем.

// ErrWebhookUnset - ошибка конфигурации: адрес движка не задан.
// Фатальна для любого сетевого действия, проверяется до отправки.
var ErrWebhookUnset = errors.New("webhook url is not configured")

const requestTimeout = 60 * time.Second

type Client struct {
	url  string
	http *http.Client
	log  *logrus.Entry
}

func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: requestTimeout},
		log:  logger.Component("agent"),
	}
}

// call отправляет запрос и декодирует ответ в out.
// Не-2xx статус - транспортная ошибка; состояние вызывающего не меняется.
func (c *Client) call(action string, body, out any) error {
	if c.url == "" {
		return ErrWebhookUnset
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", action, err)
	}

	c.log.WithField("webhook_action", action).Debug("Calling narrative engine")

	resp, err := c.http.Post(c.url, "application/json", bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%s request: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Тело включаем в ошибку: движок кладет туда причину отказа
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s request failed: %d %s", action, resp.StatusCode, string(text))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", action, err)
	}
	return nil
}

// GenerateParty запрашивает генерацию стартовой партии.
func (c *Client) GenerateParty(partySize int) (*api.GeneratePartyResponse, error) {
	req := api.GeneratePartyRequest{Action: "generate_party"}
	req.Preferences.PartySize = partySize

	var out api.GeneratePartyResponse
	if err := c.call("generate_party", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DMInput отправляет реплику мастера вместе с игровым контекстом.
func (c *Client) DMInput(req api.DmInputRequest) (*api.DmInputResponse, error) {
	req.Action = "dm_input"

	var out api.DmInputResponse
	if err := c.call("dm_input", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RollDice просит движок посчитать бросок. Сами мы кубики не бросаем.
func (c *Client) RollDice(expression, purpose string) (*api.RollDiceResponse, error) {
	if purpose == "" {
		purpose = "Manual roll"
	}
	req := api.RollDiceRequest{Action: "roll_dice", Expression: expression, Purpose: purpose}

	var out api.RollDiceResponse
	if err := c.call("roll_dice", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Lookup ищет по справочнику правил (monster, spell, ...).
func (c *Client) Lookup(resource, query string) (*api.LookupResponse, error) {
	req := api.LookupRequest{Action: "lookup", Resource: resource, Query: query}

	var out api.LookupResponse
	if err := c.call("lookup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CampaignLore задает вопрос по лору кампании.
func (c *Client) CampaignLore(sessionID, question string, campaignNumber, episodeNumber int) (*api.CampaignLoreResponse, error) {
	req := api.CampaignLoreRequest{
		Action:         "campaign_lore",
		SessionID:      sessionID,
		Question:       question,
		CampaignNumber: campaignNumber,
		EpisodeNumber:  episodeNumber,
	}

	var out api.CampaignLoreResponse
	if err := c.call("campaign_lore", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateMap запрашивает карту по описанию сцены. Список доступных типов
// террейна и размер сетки - фиксированная часть контракта.
func (c *Client) GenerateMap(sessionID, sceneDescription string) (*api.GenerateMapResponse, error) {
	req := api.GenerateMapRequest{
		Action:                "generate_map",
		SessionID:             sessionID,
		SceneDescription:      sceneDescription,
		AvailableTerrainTypes: terrain.AllTypes(),
		GridSize:              domain.GridSize,
	}

	var out api.GenerateMapResponse
	if err := c.call("generate_map", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
