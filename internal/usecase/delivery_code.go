package usecase

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// 受け取り確認コードの本番実装。[100000, 999999]の一様乱数
type DeliveryCodeGenerator struct{}

func NewDeliveryCodeGenerator() *DeliveryCodeGenerator {
	return &DeliveryCodeGenerator{}
}

func (g *DeliveryCodeGenerator) NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
