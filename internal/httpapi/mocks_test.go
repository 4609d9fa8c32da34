package httpapi

import (
	"context"

	"github.com/shouni/gemini-photo-kit/pkg/domain"
)

// --- Mocks ---

type mockPhotoGenerator struct {
	runFunc        func(ctx context.Context, tool domain.Tool) ([]domain.ImageResource, error)
	lastTool       domain.Tool
	restoreCalled  bool
	removeCalled   bool
	idPhotoCalled  bool
	productCalled  bool
	headshotCalled bool
}

func (m *mockPhotoGenerator) Run(ctx context.Context, tool domain.Tool) ([]domain.ImageResource, error) {
	m.lastTool = tool
	if m.runFunc != nil {
		return m.runFunc(ctx, tool)
	}
	out := make([]domain.ImageResource, tool.OutputCount())
	for i := range out {
		out[i] = domain.ImageResource{Data: []byte("OUT"), MIMEType: "image/png"}
	}
	return out, nil
}

func (m *mockPhotoGenerator) RestorePhoto(ctx context.Context, opts domain.Restoration) (domain.ImageResource, error) {
	m.restoreCalled = true
	out, err := m.Run(ctx, opts)
	if err != nil {
		return domain.ImageResource{}, err
	}
	return out[0], nil
}

func (m *mockPhotoGenerator) GenerateIDPhoto(ctx context.Context, opts domain.IDPhoto) ([]domain.ImageResource, error) {
	m.idPhotoCalled = true
	return m.Run(ctx, opts)
}

func (m *mockPhotoGenerator) GenerateProductShowcase(ctx context.Context, opts domain.ProductShowcase) ([]domain.ImageResource, error) {
	m.productCalled = true
	return m.Run(ctx, opts)
}

func (m *mockPhotoGenerator) RemoveObject(ctx context.Context, opts domain.ObjectRemoval) (domain.ImageResource, error) {
	m.removeCalled = true
	out, err := m.Run(ctx, opts)
	if err != nil {
		return domain.ImageResource{}, err
	}
	return out[0], nil
}

func (m *mockPhotoGenerator) GenerateOfficeHeadshot(ctx context.Context, opts domain.OfficeHeadshot) ([]domain.ImageResource, error) {
	m.headshotCalled = true
	return m.Run(ctx, opts)
}
