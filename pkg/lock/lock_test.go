package lock

import (
	"context"
	"testing"
	"time"
)

func TestLocalLockerAcquireRelease(t *testing.T) {
	locker := NewLocalLocker()

	release, err := locker.Acquire(context.Background(), "jurisdiction:abc", time.Minute)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	release()

	// Released lease can be taken again immediately.
	release, err = locker.Acquire(context.Background(), "jurisdiction:abc", time.Minute)
	if err != nil {
		t.Fatalf("re-Acquire failed: %v", err)
	}
	release()
}

func TestLocalLockerIndependentKeys(t *testing.T) {
	locker := NewLocalLocker()

	releaseA, err := locker.Acquire(context.Background(), "jurisdiction:a", time.Minute)
	if err != nil {
		t.Fatalf("Acquire a failed: %v", err)
	}
	defer releaseA()

	// A held lease on one key must not block another key.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	releaseB, err := locker.Acquire(ctx, "jurisdiction:b", time.Minute)
	if err != nil {
		t.Fatalf("Acquire b blocked by unrelated key: %v", err)
	}
	releaseB()
}

func TestLocalLockerBlocksSecondHolder(t *testing.T) {
	locker := NewLocalLocker()

	release, err := locker.Acquire(context.Background(), "jurisdiction:x", time.Minute)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := locker.Acquire(ctx, "jurisdiction:x", time.Minute); err == nil {
		t.Fatal("second Acquire on a held key should fail when ctx expires")
	}

	release()

	// After release the key is free again, even though a cancelled waiter
	// briefly held the handoff.
	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second)
	defer cancel2()
	release2, err := locker.Acquire(ctx2, "jurisdiction:x", time.Minute)
	if err != nil {
		t.Fatalf("Acquire after release failed: %v", err)
	}
	release2()
}

func TestLocalLockerCancelledContext(t *testing.T) {
	locker := NewLocalLocker()

	release, err := locker.Acquire(context.Background(), "k", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := locker.Acquire(ctx, "k", time.Minute); err == nil {
		t.Fatal("Acquire with cancelled context should fail")
	}
}
