package analytics

// Status is the numeric order status reported by the marketplace.
type Status int

// Known status codes.
const (
	StatusProcessing          Status = 1
	StatusAwaitingShipment    Status = 2
	StatusRejected            Status = 3
	StatusShipped             Status = 4
	StatusReturned            Status = 5
	StatusError               Status = 6
	StatusCompleted           Status = 7
	StatusRefundedFully       Status = 8
	StatusRefundedPartially   Status = 9
	StatusAwaitingPayment     Status = 10
	StatusCompletedPending    Status = 11
	StatusPaymentPending      Status = 12
	StatusCompletedPaid       Status = 13
	StatusCompletedCancelled  Status = 14
	StatusInProgress          Status = 15
	StatusAwaitingBuyer       Status = 16
	StatusAdministratorCalled Status = 17
)

// Status labels that the aggregations match on.
const (
	LabelCompleted         = "Завершен"
	LabelRefundedFully     = "Возвращен полностью"
	LabelRefundedPartially = "Возвращен частично"
	LabelUnknown           = "Неизвестный статус"
)

var statusLabels = map[Status]string{
	StatusProcessing:          "В обработке",
	StatusAwaitingShipment:    "Подтвержден, ожидает отправки",
	StatusRejected:            "Отклонен",
	StatusShipped:             "Отправлен, ожидается доставка",
	StatusReturned:            "Возвращен",
	StatusError:               "Ошибка",
	StatusCompleted:           LabelCompleted,
	StatusRefundedFully:       LabelRefundedFully,
	StatusRefundedPartially:   LabelRefundedPartially,
	StatusAwaitingPayment:     "Подтвержден, ожидает оплаты",
	StatusCompletedPending:    "Завершен, ожидает зачисления",
	StatusPaymentPending:      "Ожидает оплаты",
	StatusCompletedPaid:       "Завершен, оплачен",
	StatusCompletedCancelled:  "Завершен, отменен",
	StatusInProgress:          "В процессе выполнения",
	StatusAwaitingBuyer:       "Ждет подтверждения покупателем",
	StatusAdministratorCalled: "Приглашен администратор",
}

// Label returns the display text for the status. Unmapped codes yield
// LabelUnknown.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return LabelUnknown
}

// Known reports whether s is one of the 17 documented codes.
func (s Status) Known() bool {
	_, ok := statusLabels[s]
	return ok
}

// isReturnLabel reports whether a resolved status text counts as a return.
func isReturnLabel(label string) bool {
	return label == LabelRefundedFully || label == LabelRefundedPartially
}
