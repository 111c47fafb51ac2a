package checkout

import (
	"context"
	"fmt"
	"reflect"
	"time"

	interf "github.com/glkeru/loyalty/checkout/internal/interfaces"
	model "github.com/glkeru/loyalty/checkout/internal/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Журнал оформления заказов в MongoDB (для ручной сверки)
type JournalDB struct {
	mgo  *mongo.Client
	coll *mongo.Collection
}

var _ interf.CheckoutJournal = (*JournalDB)(nil)

func NewJournalDB(uri string) (*JournalDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if uri == "" {
		return nil, fmt.Errorf("env CHECKOUT_MONGO is not set")
	}

	opts := options.Client().ApplyURI("mongodb://" + uri).SetRegistry(journalRegistry())
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	coll := client.Database("checkoutDB").Collection("journal")

	return &JournalDB{client, coll}, nil
}

func (j *JournalDB) Record(ctx context.Context, entry model.JournalEntry) error {
	_, err := j.coll.InsertOne(ctx, entry)
	return err
}

// Записи по заказу в порядке времени
func (j *JournalDB) ByOrder(ctx context.Context, orderID string) ([]model.JournalEntry, error) {
	return j.find(ctx, bson.M{"orderId": orderID})
}

// Записи попытки оформления, в том числе до сохранения заказа
func (j *JournalDB) ByAttempt(ctx context.Context, attemptID string) ([]model.JournalEntry, error) {
	return j.find(ctx, bson.M{"attemptId": attemptID})
}

func (j *JournalDB) find(ctx context.Context, filter bson.M) ([]model.JournalEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: 1}})
	cur, err := j.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []model.JournalEntry
	for cur.Next(ctx) {
		var e model.JournalEntry
		err := cur.Decode(&e)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, cur.Err()
}

func (j *JournalDB) Close(ctx context.Context) error {
	return j.mgo.Disconnect(ctx)
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// Суммы в журнале хранятся как Decimal128
func journalRegistry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(decimalType, bsoncodec.ValueEncoderFunc(encodeDecimal))
	reg.RegisterTypeDecoder(decimalType, bsoncodec.ValueDecoderFunc(decodeDecimal))
	return reg
}

func encodeDecimal(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	d, ok := val.Interface().(decimal.Decimal)
	if !ok {
		return bsoncodec.ValueEncoderError{Name: "encodeDecimal", Types: []reflect.Type{decimalType}, Received: val}
	}
	d128, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return err
	}
	return vw.WriteDecimal128(d128)
}

func decodeDecimal(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != decimalType {
		return bsoncodec.ValueDecoderError{Name: "decodeDecimal", Types: []reflect.Type{decimalType}, Received: val}
	}
	var s string
	switch vr.Type() {
	case bson.TypeDecimal128:
		d128, err := vr.ReadDecimal128()
		if err != nil {
			return err
		}
		s = d128.String()
	case bson.TypeString:
		str, err := vr.ReadString()
		if err != nil {
			return err
		}
		s = str
	default:
		return fmt.Errorf("cannot decode %v into decimal", vr.Type())
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	val.Set(reflect.ValueOf(d))
	return nil
}
