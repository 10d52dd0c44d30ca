package domain

import "fmt"

type WarningKind string

const (
	// WarningMalformedRecord: um campo numérico/data não pôde ser lido e virou zero
	WarningMalformedRecord WarningKind = "malformed_record"
	// WarningUnmatchedReference: a venda aponta para um produto fora do catálogo
	WarningUnmatchedReference WarningKind = "unmatched_reference"
)

// Warning é um aviso não fatal. Nunca impede que um total seja exibido.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	Entity   Entity      `json:"entity"`
	RecordID string      `json:"record_id,omitempty"`
	Field    string      `json:"field,omitempty"`
	Value    string      `json:"value,omitempty"`
	Message  string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

func NewMalformedRecordWarning(entity Entity, recordID, field string, value any) Warning {
	return Warning{
		Kind:     WarningMalformedRecord,
		Entity:   entity,
		RecordID: recordID,
		Field:    field,
		Value:    fmt.Sprint(value),
		Message:  fmt.Sprintf("campo %s com valor inválido %q, considerado zero", field, fmt.Sprint(value)),
	}
}

func NewUnmatchedReferenceWarning(recordID, productRef string) Warning {
	return Warning{
		Kind:     WarningUnmatchedReference,
		Entity:   EntitySales,
		RecordID: recordID,
		Field:    "product",
		Value:    productRef,
		Message:  fmt.Sprintf("produto %q não encontrado no catálogo, custo unitário considerado zero", productRef),
	}
}
