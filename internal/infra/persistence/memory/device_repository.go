package memory

import (
	"cmp"
	"context"
	"slices"

	"giftshop/internal/domain/entity"
	"giftshop/internal/domain/repository"

	"github.com/google/uuid"
)

type deviceRepository struct {
	store *Store
	tx    *txState
}

// NewDeviceRepository returns a DeviceRepository whose calls each run in their own transaction.
func NewDeviceRepository(store *Store) repository.DeviceRepository {
	return &deviceRepository{store: store}
}

func (r *deviceRepository) CreateDevice(_ context.Context, device *entity.UserDevice) (err error) {
	t, end := scope(r.store, r.tx)
	defer func() { end(err) }()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.devices {
		if existing.UserID == device.UserID && existing.DeviceID == device.DeviceID {
			return repository.ErrDuplicateDevice
		}
	}

	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	now := r.store.now()
	device.CreatedAt = now
	device.UpdatedAt = now

	stored := *device
	r.store.devices[device.ID] = &stored
	id := device.ID
	t.journal(func() { delete(r.store.devices, id) })

	return nil
}

func (r *deviceRepository) FindDeviceByID(_ context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	device, ok := r.store.devices[id]
	if !ok {
		return nil, repository.ErrDeviceNotFound
	}
	found := *device

	return &found, nil
}

func (r *deviceRepository) FindDevicesByUser(_ context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return r.collect(func(d *entity.UserDevice) bool { return d.UserID == userID }), nil
}

func (r *deviceRepository) FindActiveDevicesByUser(_ context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return r.collect(func(d *entity.UserDevice) bool { return d.UserID == userID && d.IsActive }), nil
}

func (r *deviceRepository) collect(match func(d *entity.UserDevice) bool) []*entity.UserDevice {
	r.store.mu.RLock()
	devices := make([]*entity.UserDevice, 0)
	for _, device := range r.store.devices {
		if match(device) {
			found := *device
			devices = append(devices, &found)
		}
	}
	r.store.mu.RUnlock()

	slices.SortFunc(devices, func(a, b *entity.UserDevice) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), compareIDs(a.ID, b.ID))
	})

	return devices
}

func (r *deviceRepository) UpdateFCMToken(_ context.Context, deviceID uuid.UUID, fcmToken string) (err error) {
	t, end := scope(r.store, r.tx)
	defer func() { end(err) }()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	device, ok := r.store.devices[deviceID]
	if !ok {
		return repository.ErrDeviceNotFound
	}

	previous := *device
	device.FCMToken = fcmToken
	device.UpdatedAt = r.store.now()
	t.journal(func() { *device = previous })

	return nil
}

func (r *deviceRepository) DeleteDevice(_ context.Context, id uuid.UUID) (err error) {
	t, end := scope(r.store, r.tx)
	defer func() { end(err) }()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	device, ok := r.store.devices[id]
	if !ok {
		return repository.ErrDeviceNotFound
	}

	delete(r.store.devices, id)
	t.journal(func() { r.store.devices[id] = device })

	return nil
}

func (r *deviceRepository) DeleteDevices(_ context.Context, ids []uuid.UUID) (_ int, err error) {
	t, end := scope(r.store, r.tx)
	defer func() { end(err) }()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	removed := 0
	for _, id := range ids {
		device, ok := r.store.devices[id]
		if !ok {
			continue
		}
		delete(r.store.devices, id)
		t.journal(func() { r.store.devices[id] = device })
		removed++
	}

	return removed, nil
}
