package dynamorepo

import (
	"time"

	"github.com/jmcvetta/isitfoo/internal/model"
	"github.com/jmcvetta/isitfoo/internal/wordclass"
)

// DynamoDTO represents the persistence layer DTO for DynamoDB
// It maps the domain model to DynamoDB's key structure where:
// - PK (partition key) is the Word
// - SK (sort key) is the check time in RFC 3339 nanosecond form
type DynamoDTO struct {
	PK        string          `dynamodbav:"pk"` // Partition Key - maps from Word
	SK        string          `dynamodbav:"sk"` // Sort Key - maps from CheckKey
	Class     wordclass.Class `dynamodbav:"Class"`
	Message   string          `dynamodbav:"Message"`
	CheckTime time.Time       `dynamodbav:"CheckTime"`
	Rev       int64           `dynamodbav:"Rev"` // Monotonically increasing revision number
}

// ToDomain converts a DynamoDTO to a domain model CheckRecord
func (dto *DynamoDTO) ToDomain() *model.CheckRecord {
	return &model.CheckRecord{
		Word:      dto.PK,
		Class:     dto.Class,
		Message:   dto.Message,
		CheckTime: dto.CheckTime,
		Rev:       dto.Rev,
	}
}

// FromDomain creates a DynamoDTO from a domain model CheckRecord
func FromDomain(record *model.CheckRecord) *DynamoDTO {
	return &DynamoDTO{
		PK:        record.Word,
		SK:        record.CheckKey(),
		Class:     record.Class,
		Message:   record.Message,
		CheckTime: record.CheckTime,
		Rev:       record.Rev,
	}
}

// ToDomainList converts a slice of DynamoDTOs to domain model CheckRecords
func ToDomainList(dtos []*DynamoDTO) []*model.CheckRecord {
	records := make([]*model.CheckRecord, len(dtos))
	for i, dto := range dtos {
		records[i] = dto.ToDomain()
	}
	return records
}

// FromDomainList creates a slice of DynamoDTOs from domain model CheckRecords
func FromDomainList(records []*model.CheckRecord) []*DynamoDTO {
	dtos := make([]*DynamoDTO, len(records))
	for i, record := range records {
		dtos[i] = FromDomain(record)
	}
	return dtos
}
