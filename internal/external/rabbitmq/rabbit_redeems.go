package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitConsumer struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	Msg   <-chan amqp.Delivery
	chout *amqp.Channel
}

const queue = "points_redeems"
const queueout = "points_confirms"

// Запрос на списание баллов по заказу (повторная попытка от поддержки)
type RedeemRequest struct {
	RedeemID string `json:"redeemId"`
	MemberID string `json:"memberId"`
	OrderID  string `json:"orderId"`
	Points   int64  `json:"points"`
}

func NewRabbitConsumer(url string) (rabbit *RabbitConsumer, err error) {
	if url == "" {
		return nil, fmt.Errorf("env CHECKOUT_RABBIT_URL is not set")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	// канал для входящих
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	// канал для исходящих
	chout, err := conn.Channel()
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	_, err = chout.QueueDeclare(
		queueout, // name
		true,     // durable
		false,    // delete when unused
		false,    // exclusive
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		chout.Close()
		ch.Close()
		conn.Close()
		return nil, err
	}

	// подтверждаем вручную после обработки
	msg, err := ch.Consume(
		queue, // queue
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		chout.Close()
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitConsumer{conn, ch, msg, chout}, nil
}

func (r *RabbitConsumer) Close() {
	r.chout.Close()
	r.ch.Close()
	r.conn.Close()
}

func ParseRedeem(body []byte) (req RedeemRequest, err error) {
	err = json.Unmarshal(body, &req)
	if err != nil {
		return req, err
	}
	if req.RedeemID == "" {
		req.RedeemID = req.OrderID
	}
	if req.MemberID == "" || req.OrderID == "" {
		return req, fmt.Errorf("invalid redeem: memberId and orderId are required")
	}
	return req, nil
}

type RedeemConfirm struct {
	RedeemID string `json:"redeemId"`
	Success  bool   `json:"success"`
	Reason   string `json:"reason,omitempty"`
}

// подтверждение списания
func (r *RabbitConsumer) Processed(ctx context.Context, redeemID string, success bool, reason string) error {
	msg, err := json.Marshal(&RedeemConfirm{redeemID, success, reason})
	if err != nil {
		return err
	}

	return r.chout.PublishWithContext(ctx,
		"",       // exchange
		queueout, // routing key
		false,    // mandatory
		false,    // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         msg,
		})
}
