package queue

import (
	"encoding/json"

	"github.com/jagannathit007/BSock-admin-sub004/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskListingBatchSubmitted 刊登批次提交完成任务
	TaskListingBatchSubmitted = constants.TaskListingBatchSubmitted
)

// ListingBatchSubmittedPayload 刊登批次提交任务载荷
type ListingBatchSubmittedPayload struct {
	BatchID     uint   `json:"batch_id"`
	BatchNo     string `json:"batch_no"`
	RowCount    int    `json:"row_count"`
	SubmittedBy uint   `json:"submitted_by"`
}

// NewListingBatchSubmittedTask 创建刊登批次提交任务
func NewListingBatchSubmittedTask(payload ListingBatchSubmittedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskListingBatchSubmitted, body), nil
}
