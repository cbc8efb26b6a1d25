// Package txid генерация идентификаторов платёжных транзакций.
//
// Идентификатор не является криптографическим секретом - ему достаточно
// практической уникальности для отображения в отчётах и сверки платежей.
package txid

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const prefix = "TXN"

// Generate возвращает новый идентификатор транзакции вида
// TXN-20240101150405-D9F1A2B3, составленный из текущего времени
// и случайного фрагмента UUID.
func Generate(now time.Time) string {
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102150405"), random)
}
