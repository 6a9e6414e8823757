// Package randname генерирует короткие случайные имена файлов.
package randname

import (
	"crypto/rand"
	"math/big"
)

// Length - длина генерируемого имени.
const Length = 10

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var alphabetSize = big.NewInt(int64(len(alphabet)))

// New возвращает новое имя из Length алфавитно-цифровых символов.
// Проверки коллизий нет: за один запуск создается не больше двух файлов.
func New() string {
	b := make([]byte, Length)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			// crypto/rand не возвращает ошибок на поддерживаемых платформах
			panic("randname: crypto/rand failed: " + err.Error())
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b)
}
