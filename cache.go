// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"strconv"

	"github.com/patrickmn/go-cache"
)

// Selections never expire on their own; every insert flushes them. A zero
// cleanup interval keeps go-cache from starting its janitor goroutine.
const (
	selectionCacheExpiration = cache.NoExpiration
	selectionCacheCleanup    = 0
)

// NewQueryCache creates the cache memoising k-th order statistic lookups
func NewQueryCache() *cache.Cache {
	return cache.New(selectionCacheExpiration, selectionCacheCleanup)
}

func CacheSelection(c *cache.Cache, k int, value int64) {
	c.Set(strconv.Itoa(k), value, selectionCacheExpiration)
}

func GetSelection(c *cache.Cache, k int) (int64, bool) {
	val, ok := c.Get(strconv.Itoa(k))
	if !ok {
		return 0, false
	}
	return val.(int64), true
}

// InvalidateSelections drops every cached selection. Any insert can shift
// the rank of existing values, so nothing cached survives it.
func InvalidateSelections(c *cache.Cache) {
	c.Flush()
}
