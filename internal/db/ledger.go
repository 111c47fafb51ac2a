package checkout

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	interf "github.com/glkeru/loyalty/checkout/internal/interfaces"
	model "github.com/glkeru/loyalty/checkout/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

const uniqueViolation = "23505"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var memberColumns = []string{
	"id", "user_id", "email", "status", "total_points", "used_points",
	"total_spent", "join_date", "signup_bonus_given", "tier_bonus_rank",
}

type LedgerDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

var _ interf.LedgerStorage = (*LedgerDB)(nil)

func NewLedgerDB(ctx context.Context, dsn string, logger *zap.Logger) (db *LedgerDB, err error) {
	if dsn == "" {
		return nil, fmt.Errorf("env CHECKOUT_DB_URL is not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &LedgerDB{pool, logger}, nil
}

func (p *LedgerDB) Close() {
	p.pool.Close()
}

// Создание таблиц
func (p *LedgerDB) Migrate(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, schema)
	return err
}

func (p *LedgerDB) logSQL(msg string, err error, sql string, args []any) {
	p.logger.Error(msg,
		zap.Error(err),
		zap.String("query", sql),
		zap.Any("args", args),
	)
}

// Откат при ошибке; после Commit ничего не делает
func rollback(ctx context.Context, tx pgx.Tx) {
	_ = tx.Rollback(ctx)
}

// Подарочная карта
func (p *LedgerDB) GetGiftCard(ctx context.Context, code string) (card model.GiftCard, err error) {
	sql, args, err := psql.Select("code", "initial_amount", "balance", "status", "expires_at").
		From("gift_cards").
		Where(sq.Eq{"code": code}).
		ToSql()
	if err != nil {
		return card, err
	}
	err = p.pool.QueryRow(ctx, sql, args...).
		Scan(&card.Code, &card.InitialAmount, &card.Balance, &card.Status, &card.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return card, model.NewError(model.ErrNotFound, "gift card %s not found", code)
		}
		p.logSQL("SQL error", err, sql, args)
		return card, err
	}
	return card, nil
}

// Списание с подарочной карты: min(amount, balance)
func (p *LedgerDB) RedeemGiftCard(ctx context.Context, code string, amount decimal.Decimal, now time.Time) (debit interf.GiftCardDebit, err error) {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return debit, err
	}
	defer rollback(ctx, tx)

	// блокируем карту
	var card model.GiftCard
	row := tx.QueryRow(ctx, "SELECT code, initial_amount, balance, status, expires_at FROM gift_cards WHERE code = $1 FOR UPDATE", code)
	err = row.Scan(&card.Code, &card.InitialAmount, &card.Balance, &card.Status, &card.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return debit, model.NewError(model.ErrNotFound, "gift card %s not found", code)
		}
		return debit, err
	}
	err = model.CheckGiftCard(card, now)
	if err != nil {
		return debit, err
	}

	applied, card := model.DebitGiftCard(card, amount)

	sql, args, err := debitGiftCardQuery(code, applied, card.Status, now).ToSql()
	if err != nil {
		return debit, err
	}
	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL("Redeem gift card error", err, sql, args)
		return debit, err
	}
	if tag.RowsAffected() == 0 {
		return debit, model.NewError(model.ErrExhausted, "gift card %s was used concurrently, please retry", code)
	}

	// запись списания, заказ заберет ее один раз
	id := uuid.New()
	sql, args, err = psql.Insert("gift_card_redemptions").
		Columns("id", "code", "amount", "created_at").
		Values(id, code, applied, now).
		ToSql()
	if err != nil {
		return debit, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL("Gift card redemption error", err, sql, args)
		return debit, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return debit, err
	}
	return interf.GiftCardDebit{Applied: applied, Card: card, RedemptionID: id}, nil
}

// Повторная проверка условий в самом UPDATE
func debitGiftCardQuery(code string, applied decimal.Decimal, status string, now time.Time) sq.UpdateBuilder {
	return psql.Update("gift_cards").
		Set("balance", sq.Expr("balance - ?", applied)).
		Set("status", status).
		Where(sq.Eq{"code": code, "status": model.GiftCardActive}).
		Where(sq.GtOrEq{"balance": applied}).
		Where(sq.Gt{"expires_at": now})
}

func (p *LedgerDB) GetGiftCardRedemption(ctx context.Context, id uuid.UUID) (r model.GiftCardRedemption, err error) {
	sql, args, err := psql.Select("id", "code", "amount", "order_id", "created_at").
		From("gift_card_redemptions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return r, err
	}
	var order pgtype.UUID
	err = p.pool.QueryRow(ctx, sql, args...).Scan(&r.ID, &r.Code, &r.Amount, &order, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r, model.NewError(model.ErrNotFound, "gift card redemption %s not found", id)
		}
		p.logSQL("SQL error", err, sql, args)
		return r, err
	}
	r.OrderID = uuidOrNil(order)
	return r, nil
}

// Промокод
func (p *LedgerDB) GetPromo(ctx context.Context, token string) (promo model.PromoGift, err error) {
	sql, args, err := psql.Select("token", "amount", "expires_at", "max_uses", "times_used", "status").
		From("promo_gifts").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return promo, err
	}
	err = p.pool.QueryRow(ctx, sql, args...).
		Scan(&promo.Token, &promo.Amount, &promo.ExpiresAt, &promo.MaxUses, &promo.TimesUsed, &promo.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return promo, model.NewError(model.ErrNotFound, "promo code %s not found", token)
		}
		p.logSQL("SQL error", err, sql, args)
		return promo, err
	}
	return promo, nil
}

// Использование промокода: times_used + 1
func (p *LedgerDB) RedeemPromo(ctx context.Context, token string, now time.Time) (debit interf.PromoDebit, err error) {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return debit, err
	}
	defer rollback(ctx, tx)

	promo := &debit.Promo
	row := tx.QueryRow(ctx, "SELECT token, amount, expires_at, max_uses, times_used, status FROM promo_gifts WHERE token = $1 FOR UPDATE", token)
	err = row.Scan(&promo.Token, &promo.Amount, &promo.ExpiresAt, &promo.MaxUses, &promo.TimesUsed, &promo.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return debit, model.NewError(model.ErrNotFound, "promo code %s not found", token)
		}
		return debit, err
	}
	err = model.CheckPromo(*promo, now)
	if err != nil {
		return debit, err
	}

	sql, args, err := usePromoQuery(token, now).ToSql()
	if err != nil {
		return debit, err
	}
	err = tx.QueryRow(ctx, sql, args...).Scan(&promo.TimesUsed, &promo.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return debit, model.NewError(model.ErrExhausted, "promo code %s has no uses left", token)
		}
		p.logSQL("Redeem promo error", err, sql, args)
		return debit, err
	}

	debit.RedemptionID = uuid.New()
	sql, args, err = psql.Insert("promo_redemptions").
		Columns("id", "token", "amount", "created_at").
		Values(debit.RedemptionID, token, promo.Amount, now).
		ToSql()
	if err != nil {
		return debit, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL("Promo redemption error", err, sql, args)
		return debit, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return debit, err
	}
	return debit, nil
}

// Промокод закрывается на последнем использовании
func usePromoQuery(token string, now time.Time) sq.UpdateBuilder {
	return psql.Update("promo_gifts").
		Set("times_used", sq.Expr("times_used + 1")).
		Set("status", sq.Expr("CASE WHEN times_used + 1 >= max_uses THEN ? ELSE status END", model.PromoDisabled)).
		Where(sq.Eq{"token": token, "status": model.PromoActive}).
		Where("times_used < max_uses").
		Where(sq.Gt{"expires_at": now}).
		Suffix("RETURNING times_used, status")
}

func (p *LedgerDB) GetPromoRedemption(ctx context.Context, id uuid.UUID) (r model.PromoRedemption, err error) {
	sql, args, err := psql.Select("id", "token", "amount", "order_id", "created_at").
		From("promo_redemptions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return r, err
	}
	var order pgtype.UUID
	err = p.pool.QueryRow(ctx, sql, args...).Scan(&r.ID, &r.Token, &r.Amount, &order, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r, model.NewError(model.ErrNotFound, "promo redemption %s not found", id)
		}
		p.logSQL("SQL error", err, sql, args)
		return r, err
	}
	r.OrderID = uuidOrNil(order)
	return r, nil
}

func scanMember(row pgx.Row) (m model.LoyaltyMember, err error) {
	err = row.Scan(&m.ID, &m.UserID, &m.Email, &m.Status, &m.TotalPoints, &m.UsedPoints,
		&m.TotalSpent, &m.JoinDate, &m.SignupBonusGiven, &m.TierBonusRank)
	return m, err
}

func (p *LedgerDB) getMember(ctx context.Context, where sq.Eq) (m model.LoyaltyMember, err error) {
	sql, args, err := psql.Select(memberColumns...).
		From("loyalty_members").
		Where(where).
		ToSql()
	if err != nil {
		return m, err
	}
	m, err = scanMember(p.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return m, model.NewError(model.ErrNotFound, "loyalty member not found")
		}
		p.logSQL("SQL error", err, sql, args)
		return m, err
	}
	return m, nil
}

func (p *LedgerDB) GetMember(ctx context.Context, id uuid.UUID) (model.LoyaltyMember, error) {
	return p.getMember(ctx, sq.Eq{"id": id})
}

func (p *LedgerDB) GetMemberByEmail(ctx context.Context, email string) (model.LoyaltyMember, error) {
	return p.getMember(ctx, sq.Eq{"email": email})
}

// Вступление в клуб вместе с бонусом, одной транзакцией
func (p *LedgerDB) CreateMember(ctx context.Context, m model.LoyaltyMember, signupBonus int64) error {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	sql, args, err := insertMemberQuery(m, signupBonus).ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.NewError(model.ErrValidation, "user %s is already a club member", m.UserID)
		}
		p.logSQL("SQL error", err, sql, args)
		return err
	}
	if signupBonus > 0 {
		err = insertTnx(ctx, tx, m.ID, model.EARN, signupBonus, "club signup bonus", "")
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func insertMemberQuery(m model.LoyaltyMember, signupBonus int64) sq.InsertBuilder {
	return psql.Insert("loyalty_members").
		Columns("id", "user_id", "email", "status", "join_date", "total_points", "signup_bonus_given").
		Values(m.ID, m.UserID, m.Email, m.Status, m.JoinDate, signupBonus, signupBonus > 0)
}

func insertTnx(ctx context.Context, tx pgx.Tx, memberID uuid.UUID, typ string, points int64, description string, orderID string) error {
	var order pgtype.Text
	if orderID != "" {
		order = pgtype.Text{String: orderID, Status: pgtype.Present}
	} else {
		order = pgtype.Text{Status: pgtype.Null}
	}
	sql, args, err := psql.Insert("loyalty_transactions").
		Columns("id", "member_id", "type", "points", "description", "order_id", "created_at").
		Values(uuid.New(), memberID, typ, points, description, order, time.Now()).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

// Списание баллов по заказу
func (p *LedgerDB) RedeemPoints(ctx context.Context, memberID uuid.UUID, points int64, orderID string) (err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	sql, args, err := redeemPointsQuery(memberID, points).ToSql()
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL("Redeem points error", err, sql, args)
		return err
	}
	if tag.RowsAffected() == 0 {
		rollback(ctx, tx)
		m, err := p.GetMember(ctx, memberID)
		if err != nil {
			return err
		}
		if m.Status != model.MemberActive {
			return model.NewError(model.ErrValidation, "loyalty membership is not active")
		}
		return model.NewError(model.ErrInsufficientForCap,
			"requested %d points, only %d available", points, m.AvailablePoints())
	}

	err = insertTnx(ctx, tx, memberID, model.REDEEM, points, "redeemed on order "+orderID, orderID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.AlreadyRedeemed(orderID)
		}
		return err
	}
	return tx.Commit(ctx)
}

// Условие на баланс в самом UPDATE
func redeemPointsQuery(memberID uuid.UUID, points int64) sq.UpdateBuilder {
	return psql.Update("loyalty_members").
		Set("used_points", sq.Expr("used_points + ?", points)).
		Where(sq.Eq{"id": memberID, "status": model.MemberActive}).
		Where(sq.Expr("total_points - used_points >= ?", points))
}

// Сколько баллов уже списано по заказу
func (p *LedgerDB) RedeemedForOrder(ctx context.Context, orderID string) (points int64, err error) {
	sql, args, err := psql.Select("COALESCE(SUM(points), 0)").
		From("loyalty_transactions").
		Where(sq.Eq{"order_id": orderID, "type": model.REDEEM}).
		ToSql()
	if err != nil {
		return 0, err
	}
	err = p.pool.QueryRow(ctx, sql, args...).Scan(&points)
	if err != nil {
		p.logSQL("SQL error", err, sql, args)
		return 0, err
	}
	return points, nil
}

// Начисление по заказу и бонус за переход на уровень, одной транзакцией
func (p *LedgerDB) PostAccrual(ctx context.Context, memberID uuid.UUID, a interf.Accrual) (bonusGranted bool, err error) {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer rollback(ctx, tx)

	sql, args, err := psql.Update("loyalty_members").
		Set("total_points", sq.Expr("total_points + ?", a.Points)).
		Set("total_spent", sq.Expr("total_spent + ?", a.Spent)).
		Where(sq.Eq{"id": memberID}).
		ToSql()
	if err != nil {
		return false, err
	}
	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL("Accrual error", err, sql, args)
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, model.NewError(model.ErrNotFound, "loyalty member not found")
	}
	if a.Points > 0 {
		err = insertTnx(ctx, tx, memberID, model.EARN, a.Points, a.Description, a.OrderID)
		if err != nil {
			return false, err
		}
	}

	// бонус за уровень: check-and-set по tier_bonus_rank
	if a.BonusRank > 0 && a.BonusPoints > 0 {
		sql, args, err = tierBonusQuery(memberID, a.BonusRank, a.BonusPoints).ToSql()
		if err != nil {
			return false, err
		}
		tag, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			p.logSQL("Tier bonus error", err, sql, args)
			return false, err
		}
		if tag.RowsAffected() == 1 {
			err = insertTnx(ctx, tx, memberID, model.EARN, a.BonusPoints, a.BonusReason, a.OrderID)
			if err != nil {
				return false, err
			}
			bonusGranted = true
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return false, err
	}
	return bonusGranted, nil
}

func tierBonusQuery(memberID uuid.UUID, rank int, points int64) sq.UpdateBuilder {
	return psql.Update("loyalty_members").
		Set("tier_bonus_rank", rank).
		Set("total_points", sq.Expr("total_points + ?", points)).
		Where(sq.Eq{"id": memberID}).
		Where(sq.Lt{"tier_bonus_rank": rank})
}

// История транзакций
func (p *LedgerDB) GetTransactions(ctx context.Context, memberID uuid.UUID, from time.Time, to time.Time) (tnxs []model.LoyaltyTransaction, err error) {
	sql, args, err := psql.Select("id", "member_id", "type", "points", "description", "order_id", "created_at").
		From("loyalty_transactions").
		Where(sq.Eq{"member_id": memberID}).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.LtOrEq{"created_at": to}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		p.logSQL("SQL error", err, sql, args)
		return nil, err
	}
	defer rows.Close()

	var orderID pgtype.Text
	for rows.Next() {
		var tnx model.LoyaltyTransaction
		err = rows.Scan(&tnx.ID, &tnx.MemberID, &tnx.Type, &tnx.Points, &tnx.Description, &orderID, &tnx.CreatedAt)
		if err != nil {
			return nil, err
		}
		tnx.OrderID = orderID.String
		tnxs = append(tnxs, tnx)
	}
	return tnxs, rows.Err()
}

// Баланс по журналу транзакций
func (p *LedgerDB) LedgerBalance(ctx context.Context, memberID uuid.UUID) (earned int64, redeemed int64, err error) {
	sql, args, err := psql.Select(
		"COALESCE(SUM(points) FILTER (WHERE type = 'EARN'), 0)",
		"COALESCE(SUM(points) FILTER (WHERE type = 'REDEEM'), 0)").
		From("loyalty_transactions").
		Where(sq.Eq{"member_id": memberID}).
		ToSql()
	if err != nil {
		return 0, 0, err
	}
	err = p.pool.QueryRow(ctx, sql, args...).Scan(&earned, &redeemed)
	if err != nil {
		p.logSQL("SQL error", err, sql, args)
		return 0, 0, err
	}
	return earned, redeemed, nil
}

func (p *LedgerDB) ListMemberIDs(ctx context.Context) (ids []uuid.UUID, err error) {
	rows, err := p.pool.Query(ctx, "SELECT id FROM loyalty_members ORDER BY join_date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		err = rows.Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func nullText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Status: pgtype.Null}
	}
	return pgtype.Text{String: s, Status: pgtype.Present}
}

func nullUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Status: pgtype.Null}
	}
	return pgtype.UUID{Bytes: *id, Status: pgtype.Present}
}

func uuidOrNil(id pgtype.UUID) *uuid.UUID {
	if id.Status != pgtype.Present {
		return nil
	}
	u := uuid.UUID(id.Bytes)
	return &u
}

// Списание достается только одному заказу
func claimRedemptionQuery(table string, id uuid.UUID, orderID uuid.UUID) sq.UpdateBuilder {
	return psql.Update(table).
		Set("order_id", orderID).
		Where(sq.Eq{"id": id, "order_id": nil})
}

func (p *LedgerDB) claim(ctx context.Context, tx pgx.Tx, table string, id uuid.UUID, orderID uuid.UUID) error {
	sql, args, err := claimRedemptionQuery(table, id, orderID).ToSql()
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL("Claim redemption error", err, sql, args)
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.NewError(model.ErrExhausted, "redemption %s was already used by another order", id)
	}
	return nil
}

// Заказ и позиции: всё или ничего.
// Списания карты и промокода привязываются к заказу в той же транзакции
func (p *LedgerDB) CreateOrder(ctx context.Context, o model.Order) error {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	sql, args, err := psql.Insert("orders").
		Columns("id", "member_id", "customer_name", "customer_email", "customer_phone", "address", "city",
			"subtotal", "shipping_fee", "gift_card_amount", "gift_card_code", "promo_amount", "promo_gift_token",
			"points_redeemed", "total_amount", "created_at").
		Values(o.ID, nullUUID(o.MemberID), o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.Address, o.City,
			o.Subtotal, o.ShippingFee, o.GiftCardAmount, nullText(o.GiftCardCode), o.PromoAmount, nullText(o.PromoGiftToken),
			o.PointsRedeemed, o.TotalAmount, o.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL("Create order error", err, sql, args)
		return err
	}

	items := psql.Insert("order_items").
		Columns("id", "order_id", "product_id", "name", "price", "quantity")
	for _, i := range o.Items {
		items = items.Values(i.ID, o.ID, i.ProductID, i.Name, i.Price, i.Quantity)
	}
	sql, args, err = items.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL("Create order items error", err, sql, args)
		return err
	}

	if o.GiftCardRedemptionID != nil {
		err = p.claim(ctx, tx, "gift_card_redemptions", *o.GiftCardRedemptionID, o.ID)
		if err != nil {
			return err
		}
	}
	if o.PromoRedemptionID != nil {
		err = p.claim(ctx, tx, "promo_redemptions", *o.PromoRedemptionID, o.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (p *LedgerDB) GetOrder(ctx context.Context, id uuid.UUID) (o model.Order, err error) {
	sql, args, err := psql.Select("id", "member_id", "customer_name", "customer_email", "customer_phone", "address", "city",
		"subtotal", "shipping_fee", "gift_card_amount", "gift_card_code", "promo_amount", "promo_gift_token",
		"points_redeemed", "total_amount", "created_at",
		"(SELECT r.id FROM gift_card_redemptions r WHERE r.order_id = orders.id)",
		"(SELECT r.id FROM promo_redemptions r WHERE r.order_id = orders.id)").
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return o, err
	}

	var member, giftRedemption, promoRedemption pgtype.UUID
	var giftCode, promoToken pgtype.Text
	err = p.pool.QueryRow(ctx, sql, args...).Scan(&o.ID, &member, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.Address, &o.City, &o.Subtotal, &o.ShippingFee, &o.GiftCardAmount, &giftCode, &o.PromoAmount, &promoToken,
		&o.PointsRedeemed, &o.TotalAmount, &o.CreatedAt, &giftRedemption, &promoRedemption)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return o, model.NewError(model.ErrNotFound, "order %s not found", id)
		}
		p.logSQL("SQL error", err, sql, args)
		return o, err
	}
	o.MemberID = uuidOrNil(member)
	o.GiftCardRedemptionID = uuidOrNil(giftRedemption)
	o.PromoRedemptionID = uuidOrNil(promoRedemption)
	o.GiftCardCode = giftCode.String
	o.PromoGiftToken = promoToken.String

	rows, err := p.pool.Query(ctx,
		"SELECT id, order_id, product_id, name, price, quantity FROM order_items WHERE order_id = $1", id)
	if err != nil {
		return o, err
	}
	defer rows.Close()
	for rows.Next() {
		var i model.OrderItem
		err = rows.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Name, &i.Price, &i.Quantity)
		if err != nil {
			return o, err
		}
		o.Items = append(o.Items, i)
	}
	return o, rows.Err()
}
