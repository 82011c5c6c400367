/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package database

import (
	"context"
	"fmt"
	"time"

	"ssl-guardian/src/config"
	"ssl-guardian/src/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB holds the certificate store connection. The store is populated by an
// external scanner; the dashboard only ever reads from it.
type DB struct {
	client     *mongo.Client
	database   *mongo.Database
	collection *mongo.Collection
}

// NewConnection creates a new certificate store connection using configuration
func NewConnection(cfg *config.Database) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(time.Duration(cfg.ConnectTimeout) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to certificate store: %w", err)
	}

	// Test the connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping certificate store: %w", err)
	}

	database := client.Database(cfg.Name)
	return &DB{
		client:     client,
		database:   database,
		collection: database.Collection(cfg.Collection),
	}, nil
}

// Certificates returns the scanner's certificates collection.
func (db *DB) Certificates() *mongo.Collection {
	return db.collection
}

// EnsureIndexes creates the secondary indexes the aggregation pipelines rely
// on. Best-effort: the scanner's DB user may not grant index creation, so
// failures are logged rather than fatal.
func (db *DB) EnsureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "parsed.validity.end", Value: 1}}},
		{Keys: bson.D{{Key: "parsed.validity.start", Value: 1}}},
		{Keys: bson.D{{Key: "domain", Value: 1}}},
		{Keys: bson.D{{Key: "zlint.errors_present", Value: 1}}},
		{Keys: bson.D{{Key: "parsed.signature_algorithm.name", Value: 1}}},
	}
	if _, err := db.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		utils.LogWarning(fmt.Sprintf("Failed to ensure certificate store indexes: %v", err))
		return
	}
	utils.LogInfo("Certificate store indexes ensured")
}

// Close disconnects from the certificate store.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
