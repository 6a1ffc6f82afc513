package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/features/school/schedules/dto"
	m "kampusku_backend/internals/features/school/schedules/model"
)

func existingAttachment(key string) m.AttachmentModel {
	return m.AttachmentModel{
		AttachmentID:    uuid.New(),
		AttachmentTitle: "lama-" + key,
		AttachmentKey:   key,
	}
}

func TestPlanReconcile_SetDifference(t *testing.T) {
	existing := []m.AttachmentModel{
		existingAttachment("keep.pdf"),
		existingAttachment("drop.pdf"),
	}
	desired := []dto.AttachmentInput{
		{Title: "Keep", Key: "keep.pdf", Mimetype: "application/pdf"},
		{Title: "New", Key: "new.pdf", Mimetype: "application/pdf"},
	}

	diff := PlanReconcile(existing, desired)

	require.Len(t, diff.ToCreate, 1)
	assert.Equal(t, "new.pdf", diff.ToCreate[0].Key)

	require.Len(t, diff.ToDelete, 1)
	assert.Equal(t, "drop.pdf", diff.ToDelete[0].AttachmentKey)
}

func TestPlanReconcile_Idempotent(t *testing.T) {
	desired := []dto.AttachmentInput{
		{Title: "A", Key: "a.pdf", Mimetype: "application/pdf"},
		{Title: "B", Key: "b.png", Mimetype: "image/png"},
	}

	// state setelah apply pertama: semua desired sudah punya row
	applied := make([]m.AttachmentModel, 0, len(desired))
	for _, d := range desired {
		applied = append(applied, m.AttachmentModel{
			AttachmentID:       uuid.New(),
			AttachmentTitle:    d.Title,
			AttachmentKey:      d.Key,
			AttachmentMimetype: d.Mimetype,
		})
	}

	diff := PlanReconcile(applied, desired)
	assert.Empty(t, diff.ToCreate)
	assert.Empty(t, diff.ToDelete)
}

func TestPlanReconcile_KeyMatchIgnoresMetadata(t *testing.T) {
	// key sama tapi title beda: row dibiarkan, bukan create+delete
	existing := []m.AttachmentModel{existingAttachment("same.pdf")}
	desired := []dto.AttachmentInput{
		{Title: "Judul Baru", Key: "same.pdf", Mimetype: "application/pdf"},
	}

	diff := PlanReconcile(existing, desired)
	assert.Empty(t, diff.ToCreate)
	assert.Empty(t, diff.ToDelete)
}

func TestPlanReconcile_EmptyDesiredDeletesAll(t *testing.T) {
	existing := []m.AttachmentModel{
		existingAttachment("a.pdf"),
		existingAttachment("b.pdf"),
	}

	diff := PlanReconcile(existing, nil)
	assert.Empty(t, diff.ToCreate)
	assert.Len(t, diff.ToDelete, 2)
}
