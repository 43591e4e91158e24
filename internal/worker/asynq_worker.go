package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jagannathit007/BSock-admin-sub004/internal/constants"
	"github.com/jagannathit007/BSock-admin-sub004/internal/logger"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"
	"github.com/jagannathit007/BSock-admin-sub004/internal/provider"
	"github.com/jagannathit007/BSock-admin-sub004/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskListingBatchSubmitted, c.handleListingBatchSubmitted)
}

// handleListingBatchSubmitted 批次提交后的通知处理。重复投递安全：
// 已通知的批次直接跳过。
func (c *Consumer) handleListingBatchSubmitted(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_batch_submitted_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ListingBatchSubmittedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_batch_submitted_unmarshal_failed", "error", err)
		return err
	}
	if payload.BatchID == 0 {
		logger.Debugw("worker_batch_submitted_skip_invalid_payload", "batch_id", payload.BatchID)
		return nil
	}
	batch, err := c.ListingRepo.GetBatchByID(payload.BatchID)
	if err != nil {
		logger.Warnw("worker_batch_submitted_fetch_failed", "batch_id", payload.BatchID, "error", err)
		return err
	}
	if batch == nil {
		logger.Debugw("worker_batch_submitted_skip_not_found", "batch_id", payload.BatchID)
		return nil
	}
	if batch.Status == constants.ListingBatchStatusNotified {
		logger.Debugw("worker_batch_submitted_skip_already_notified", "batch_id", batch.ID, "batch_no", batch.BatchNo)
		return nil
	}

	listings, _, err := c.ListingRepo.List(queueBatchFilter(batch.ID))
	if err != nil {
		logger.Warnw("worker_batch_submitted_list_failed", "batch_id", batch.ID, "error", err)
		return err
	}

	logger.Infow("worker_batch_submitted_notify",
		"batch_id", batch.ID,
		"batch_no", batch.BatchNo,
		"mode", batch.Mode,
		"row_count", batch.RowCount,
		"summary", buildBatchSummary(listings),
	)

	if err := c.ListingRepo.MarkBatchNotified(batch.ID); err != nil {
		logger.Warnw("worker_batch_submitted_mark_failed", "batch_id", batch.ID, "error", err)
		return err
	}
	return nil
}

// buildBatchSummary 生成批次摘要文本：每行一个条目，含型号、报价地区与唯一刊登号。
func buildBatchSummary(listings []models.Listing) string {
	if len(listings) == 0 {
		return ""
	}
	lines := make([]string, 0, len(listings))
	for _, item := range listings {
		model := strings.TrimSpace(item.SubModelName)
		if model == "" {
			model = "(unnamed)"
		}
		regions := strings.Join(item.DeliveryLocations, "/")
		if regions == "" {
			regions = "-"
		}
		lines = append(lines, fmt.Sprintf("%s %s %s [%s] %s", model, item.Storage, item.Colour, regions, item.UniqueListingNo))
	}
	return strings.Join(lines, "\n")
}
