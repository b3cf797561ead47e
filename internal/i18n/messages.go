package i18n

import calcerrors "calc/internal/errors"

var locales = map[string]map[calcerrors.Code]string{
	"en-US": {
		calcerrors.CodeDivisionByZero:  "division by zero",
		calcerrors.CodeResultTooLarge:  "result is greater than 1000",
		calcerrors.CodeResultTooSmall:  "result is smaller than 0.001",
		calcerrors.CodeInvalidOperator: "invalid operator: {{.Operator}}",
		calcerrors.CodeInvalidOperand:  "invalid operand: {{.Input}}",
	},
	"tr-TR": {
		calcerrors.CodeDivisionByZero:  "Sifira bolme hatasi!",
		calcerrors.CodeResultTooLarge:  "Sonuc 1000'den buyuk!",
		calcerrors.CodeResultTooSmall:  "Sonuc 0.001'den kucuk!",
		calcerrors.CodeInvalidOperator: "Gecersiz islem: {{.Operator}}",
		calcerrors.CodeInvalidOperand:  "Gecersiz sayi: {{.Input}}",
	},
}
