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

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ssl-guardian/src/config"
	"ssl-guardian/src/internal/constants"
	"ssl-guardian/src/internal/database"
	"ssl-guardian/src/internal/dto"
	"ssl-guardian/src/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCertificateRepo is the store-backed CertificateRepository.
type MongoCertificateRepo struct {
	coll     *mongo.Collection
	window   time.Duration
	topLimit int
	timeout  time.Duration
	now      func() time.Time
}

// NewMongoCertificateRepo creates a repository over the given connection.
func NewMongoCertificateRepo(db *database.DB, cfg *config.Server) *MongoCertificateRepo {
	return &MongoCertificateRepo{
		coll:     db.Certificates(),
		window:   time.Duration(cfg.Dashboard.ExpiringSoonDays) * 24 * time.Hour,
		topLimit: cfg.Dashboard.TopLimit,
		timeout:  time.Duration(cfg.Database.QueryTimeout) * time.Second,
		now:      time.Now,
	}
}

func (r *MongoCertificateRepo) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", constants.ErrStoreUnavailable, op, err)
}

// matchFor resolves the filter to a match document. The "Others" issuer slice
// needs the current top-CA list, which costs one extra aggregation.
func (r *MongoCertificateRepo) matchFor(ctx context.Context, f *dto.CertificateFilter) (bson.M, error) {
	var topCAs []string
	if f != nil && f.Issuer == constants.IssuerOthers {
		rest := *f
		rest.Issuer = ""
		buckets, err := r.issuerBuckets(ctx, BuildQuery(&rest, r.now(), r.window, nil), r.topLimit)
		if err != nil {
			return nil, err
		}
		for _, b := range buckets {
			topCAs = append(topCAs, b.Key)
		}
	}
	return BuildQuery(f, r.now(), r.window, topCAs), nil
}

func mergeMatch(match, extra bson.M) bson.M {
	if len(match) == 0 {
		return extra
	}
	if len(extra) == 0 {
		return match
	}
	return bson.M{"$and": []bson.M{match, extra}}
}

// List returns one page of certificates plus the filtered total. Results are
// ordered by _id so pages are stable while the scanner appends.
func (r *MongoCertificateRepo) List(ctx context.Context, f *dto.CertificateFilter, page, pageSize int) ([]model.Certificate, int64, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, storeErr("count certificates", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.coll.Find(ctx, match, opts)
	if err != nil {
		return nil, 0, storeErr("list certificates", err)
	}
	defer cursor.Close(ctx)

	var certs []model.Certificate
	if err := cursor.All(ctx, &certs); err != nil {
		return nil, 0, storeErr("decode certificates", err)
	}
	return certs, total, nil
}

// GetByID fetches one certificate by its hex object id.
func (r *MongoCertificateRepo) GetByID(ctx context.Context, id string) (*model.Certificate, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, constants.ErrInvalidCertificateID
	}

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	var cert model.Certificate
	err = r.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&cert)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, constants.ErrCertificateNotFound
	}
	if err != nil {
		return nil, storeErr("get certificate", err)
	}
	return &cert, nil
}

func (r *MongoCertificateRepo) Count(ctx context.Context, f *dto.CertificateFilter) (int64, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return 0, err
	}
	count, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return 0, storeErr("count certificates", err)
	}
	return count, nil
}

type facetCount struct {
	Count int64 `bson:"count"`
}

func facetValue(rows []facetCount) int64 {
	if len(rows) == 0 {
		return 0
	}
	return rows[0].Count
}

// StatusCounts gathers the dashboard's headline counters in one store round
// trip.
func (r *MongoCertificateRepo) StatusCounts(ctx context.Context, f *dto.CertificateFilter) (*StatusCounts, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}

	now := r.now()
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$facet", Value: bson.M{
			"total": bson.A{bson.M{"$count": "count"}},
			"active": bson.A{
				bson.M{"$match": statusActiveClause(now)},
				bson.M{"$count": "count"},
			},
			"expiring": bson.A{
				bson.M{"$match": statusClause(constants.StatusExpiringSoon, now, r.window)},
				bson.M{"$count": "count"},
			},
			"expired": bson.A{
				bson.M{"$match": statusClause(constants.StatusExpired, now, r.window)},
				bson.M{"$count": "count"},
			},
			"vulnerable": bson.A{
				bson.M{"$match": bson.M{fieldZlintErrors: true}},
				bson.M{"$count": "count"},
			},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr("status counts", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total      []facetCount `bson:"total"`
		Active     []facetCount `bson:"active"`
		Expiring   []facetCount `bson:"expiring"`
		Expired    []facetCount `bson:"expired"`
		Vulnerable []facetCount `bson:"vulnerable"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, storeErr("decode status counts", err)
	}
	if len(rows) == 0 {
		return &StatusCounts{}, nil
	}
	return &StatusCounts{
		Total:        facetValue(rows[0].Total),
		Active:       facetValue(rows[0].Active),
		ExpiringSoon: facetValue(rows[0].Expiring),
		Expired:      facetValue(rows[0].Expired),
		Vulnerable:   facetValue(rows[0].Vulnerable),
	}, nil
}

func (r *MongoCertificateRepo) groupCount(ctx context.Context, match bson.M, groupID any, limit int, op string) ([]Bucket, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": groupID, "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer cursor.Close(ctx)

	var buckets []Bucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, storeErr("decode "+op, err)
	}
	return buckets, nil
}

// EncryptionBuckets groups certificates by public key algorithm.
func (r *MongoCertificateRepo) EncryptionBuckets(ctx context.Context, f *dto.CertificateFilter) ([]Bucket, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}
	groupID := bson.M{"$ifNull": bson.A{"$" + fieldKeyAlgorithm, "Unknown"}}
	return r.groupCount(ctx, match, groupID, 0, "encryption buckets")
}

func (r *MongoCertificateRepo) issuerBuckets(ctx context.Context, match bson.M, limit int) ([]Bucket, error) {
	groupID := bson.M{"$ifNull": bson.A{
		bson.M{"$arrayElemAt": bson.A{"$" + fieldIssuerOrg, 0}},
		"Unknown",
	}}
	return r.groupCount(ctx, match, groupID, limit, "issuer buckets")
}

// IssuerBuckets groups certificates by issuing organization, most common
// first.
func (r *MongoCertificateRepo) IssuerBuckets(ctx context.Context, f *dto.CertificateFilter, limit int) ([]Bucket, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}
	return r.issuerBuckets(ctx, match, limit)
}

// TLDBuckets groups certificates by the final label of their domain.
func (r *MongoCertificateRepo) TLDBuckets(ctx context.Context, f *dto.CertificateFilter) ([]Bucket, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}
	match = mergeMatch(match, bson.M{fieldDomain: bson.M{"$exists": true, "$nin": bson.A{"", nil}}})
	groupID := bson.M{"$toLower": bson.M{"$arrayElemAt": bson.A{
		bson.M{"$split": bson.A{"$" + fieldDomain, "."}}, -1,
	}}}
	return r.groupCount(ctx, match, groupID, 0, "tld buckets")
}

func (r *MongoCertificateRepo) countWithClause(ctx context.Context, f *dto.CertificateFilter, extra bson.M, op string) (int64, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return 0, err
	}
	count, err := r.coll.CountDocuments(ctx, mergeMatch(match, extra))
	if err != nil {
		return 0, storeErr(op, err)
	}
	return count, nil
}

// ExpiringWithin counts unexpired certificates whose validity ends within
// days of from.
func (r *MongoCertificateRepo) ExpiringWithin(ctx context.Context, f *dto.CertificateFilter, from time.Time, days int) (int64, error) {
	return r.countWithClause(ctx, f, expiryRangeClause(from, from.AddDate(0, 0, days), false), "expiring count")
}

// ExpiryCountInRange counts certificates expiring inside [start, end].
func (r *MongoCertificateRepo) ExpiryCountInRange(ctx context.Context, f *dto.CertificateFilter, start, end time.Time) (int64, error) {
	return r.countWithClause(ctx, f, expiryRangeClause(start, end, true), "expiry range count")
}

// IssuedCountInRange counts certificates issued inside [start, end].
func (r *MongoCertificateRepo) IssuedCountInRange(ctx context.Context, f *dto.CertificateFilter, start, end time.Time) (int64, error) {
	return r.countWithClause(ctx, f, issuedRangeClause(start, end), "issued range count")
}

// ValidityLengthStats summarises certificate lifetimes. Compliance follows
// the 398-day public TLS lifetime ceiling.
func (r *MongoCertificateRepo) ValidityLengthStats(ctx context.Context, f *dto.CertificateFilter) (*ValidityLengthStats, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}
	match = mergeMatch(match, bson.M{fieldValidityLength: bson.M{"$gt": 0}})

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$project", Value: bson.M{
			"days": bson.M{"$divide": bson.A{"$" + fieldValidityLength, secondsPerDay}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"total":       bson.M{"$sum": 1},
			"averageDays": bson.M{"$avg": "$days"},
			"minDays":     bson.M{"$min": "$days"},
			"maxDays":     bson.M{"$max": "$days"},
			"compliant": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$lte": bson.A{"$days", 398}}, 1, 0,
			}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr("validity stats", err)
	}
	defer cursor.Close(ctx)

	var rows []ValidityLengthStats
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, storeErr("decode validity stats", err)
	}
	if len(rows) == 0 {
		return &ValidityLengthStats{}, nil
	}
	return &rows[0], nil
}

// validityBoundaries are lifetime bucket edges in days. The 100000 sentinel
// closes the top bucket.
var validityBoundaries = bson.A{0, 90, 365, 730, 100000}

// ValidityBuckets groups certificates by lifetime band.
func (r *MongoCertificateRepo) ValidityBuckets(ctx context.Context, f *dto.CertificateFilter) ([]RangeBucket, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}
	match = mergeMatch(match, bson.M{fieldValidityLength: bson.M{"$gt": 0}})

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$bucket", Value: bson.M{
			"groupBy":    bson.M{"$divide": bson.A{"$" + fieldValidityLength, secondsPerDay}},
			"boundaries": validityBoundaries,
			"default":    -1,
			"output":     bson.M{"count": bson.M{"$sum": 1}},
		}}},
	}
	return r.rangeBuckets(ctx, pipeline, "validity buckets")
}

func (r *MongoCertificateRepo) rangeBuckets(ctx context.Context, pipeline mongo.Pipeline, op string) ([]RangeBucket, error) {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer cursor.Close(ctx)

	var buckets []RangeBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, storeErr("decode "+op, err)
	}
	return buckets, nil
}

// SignatureAlgorithmBuckets groups certificates by signature algorithm name.
func (r *MongoCertificateRepo) SignatureAlgorithmBuckets(ctx context.Context, f *dto.CertificateFilter) ([]Bucket, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}
	groupID := bson.M{"$ifNull": bson.A{"$" + fieldSigAlgorithm, "Unknown"}}
	return r.groupCount(ctx, match, groupID, 0, "signature algorithm buckets")
}

// KeySizeBuckets groups certificates by key algorithm and length.
func (r *MongoCertificateRepo) KeySizeBuckets(ctx context.Context, f *dto.CertificateFilter) ([]KeyLengthBucket, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$project", Value: bson.M{
			"algorithm": bson.M{"$ifNull": bson.A{"$" + fieldKeyAlgorithm, "Unknown"}},
			"length": bson.M{"$ifNull": bson.A{
				"$" + fieldRSALength,
				bson.M{"$ifNull": bson.A{"$" + fieldECDSALength, 0}},
			}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"algorithm": "$algorithm", "length": "$length"},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":       0,
			"algorithm": "$_id.algorithm",
			"length":    "$_id.length",
			"count":     1,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr("key size buckets", err)
	}
	defer cursor.Close(ctx)

	var buckets []KeyLengthBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, storeErr("decode key size buckets", err)
	}
	return buckets, nil
}

// StrengthBuckets groups certificates by the strength-score inputs so the
// mean score is computable without streaming documents.
func (r *MongoCertificateRepo) StrengthBuckets(ctx context.Context, f *dto.CertificateFilter) ([]StrengthBucket, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$project", Value: bson.M{
			"keyAlgorithm": bson.M{"$ifNull": bson.A{"$" + fieldKeyAlgorithm, "Unknown"}},
			"keyLength": bson.M{"$ifNull": bson.A{
				"$" + fieldRSALength,
				bson.M{"$ifNull": bson.A{"$" + fieldECDSALength, 0}},
			}},
			"signatureAlgorithm": bson.M{"$ifNull": bson.A{"$" + fieldSigAlgorithm, "Unknown"}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"keyAlgorithm":       "$keyAlgorithm",
				"keyLength":          "$keyLength",
				"signatureAlgorithm": "$signatureAlgorithm",
			},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":                0,
			"keyAlgorithm":       "$_id.keyAlgorithm",
			"keyLength":          "$_id.keyLength",
			"signatureAlgorithm": "$_id.signatureAlgorithm",
			"count":              1,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr("strength buckets", err)
	}
	defer cursor.Close(ctx)

	var buckets []StrengthBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, storeErr("decode strength buckets", err)
	}
	return buckets, nil
}

// SelfSignedCount counts self-signed certificates under the filter.
func (r *MongoCertificateRepo) SelfSignedCount(ctx context.Context, f *dto.CertificateFilter) (int64, error) {
	return r.countWithClause(ctx, f, bson.M{fieldSelfSigned: true}, "self-signed count")
}

// HashTrendBuckets counts certificates per issuance quarter and signature
// algorithm.
func (r *MongoCertificateRepo) HashTrendBuckets(ctx context.Context, f *dto.CertificateFilter) ([]HashTrendBucket, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}
	match = mergeMatch(match, bson.M{fieldValidityStart: bson.M{"$exists": true, "$ne": ""}})

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$project", Value: bson.M{
			"algorithm": bson.M{"$ifNull": bson.A{"$" + fieldSigAlgorithm, "Unknown"}},
			"date": bson.M{"$dateFromString": bson.M{
				"dateString": "$" + fieldValidityStart,
				"onError":    nil,
			}},
		}}},
		{{Key: "$match", Value: bson.M{"date": bson.M{"$ne": nil}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":      bson.M{"$year": "$date"},
				"quarter":   bson.M{"$ceil": bson.M{"$divide": bson.A{bson.M{"$month": "$date"}, 3}}},
				"algorithm": "$algorithm",
			},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.year", Value: 1}, {Key: "_id.quarter", Value: 1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":       0,
			"year":      "$_id.year",
			"quarter":   "$_id.quarter",
			"algorithm": "$_id.algorithm",
			"count":     1,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr("hash trend buckets", err)
	}
	defer cursor.Close(ctx)

	var buckets []HashTrendBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, storeErr("decode hash trend buckets", err)
	}
	return buckets, nil
}

// IssuerAlgorithmMatrix counts certificates per (top issuer, signature
// algorithm) pairing.
func (r *MongoCertificateRepo) IssuerAlgorithmMatrix(ctx context.Context, f *dto.CertificateFilter, topIssuers int) ([]MatrixCellAgg, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}

	top, err := r.issuerBuckets(ctx, match, topIssuers)
	if err != nil {
		return nil, err
	}
	issuers := make([]string, 0, len(top))
	for _, b := range top {
		issuers = append(issuers, b.Key)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$project", Value: bson.M{
			"issuer": bson.M{"$ifNull": bson.A{
				bson.M{"$arrayElemAt": bson.A{"$" + fieldIssuerOrg, 0}},
				"Unknown",
			}},
			"algorithm": bson.M{"$ifNull": bson.A{"$" + fieldSigAlgorithm, "Unknown"}},
		}}},
		{{Key: "$match", Value: bson.M{"issuer": bson.M{"$in": issuers}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"issuer": "$issuer", "algorithm": "$algorithm"},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":       0,
			"issuer":    "$_id.issuer",
			"algorithm": "$_id.algorithm",
			"count":     1,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr("issuer algorithm matrix", err)
	}
	defer cursor.Close(ctx)

	var cells []MatrixCellAgg
	if err := cursor.All(ctx, &cells); err != nil {
		return nil, storeErr("decode issuer algorithm matrix", err)
	}
	return cells, nil
}

const wildcardPattern = `^\*\.`

// SANStats summarises subject alternative name usage under the filter.
func (r *MongoCertificateRepo) SANStats(ctx context.Context, f *dto.CertificateFilter) (*SANStatsAgg, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}

	names := bson.M{"$ifNull": bson.A{"$" + fieldNames, bson.A{}}}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$project", Value: bson.M{
			"sanCount": bson.M{"$size": names},
			"wildcards": bson.M{"$size": bson.M{"$filter": bson.M{
				"input": names,
				"as":    "name",
				"cond":  bson.M{"$regexMatch": bson.M{"input": "$$name", "regex": wildcardPattern}},
			}}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"total":       bson.M{"$sum": 1},
			"averageSans": bson.M{"$avg": "$sanCount"},
			"maxSans":     bson.M{"$max": "$sanCount"},
			"singleDomain": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$lte": bson.A{"$sanCount", 1}}, 1, 0,
			}}},
			"wildcard": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$gt": bson.A{"$wildcards", 0}}, 1, 0,
			}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr("san stats", err)
	}
	defer cursor.Close(ctx)

	var rows []SANStatsAgg
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, storeErr("decode san stats", err)
	}
	if len(rows) == 0 {
		return &SANStatsAgg{}, nil
	}
	return &rows[0], nil
}

// sanCountBoundaries band certificates by how many names they cover.
var sanCountBoundaries = bson.A{0, 2, 6, 11, 26, 51, 100000}

// SANCountBuckets groups certificates by SAN count band.
func (r *MongoCertificateRepo) SANCountBuckets(ctx context.Context, f *dto.CertificateFilter) ([]RangeBucket, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$bucket", Value: bson.M{
			"groupBy":    bson.M{"$size": bson.M{"$ifNull": bson.A{"$" + fieldNames, bson.A{}}}},
			"boundaries": sanCountBoundaries,
			"default":    -1,
			"output":     bson.M{"count": bson.M{"$sum": 1}},
		}}},
	}
	return r.rangeBuckets(ctx, pipeline, "san count buckets")
}

// SANTLDBuckets counts subject alternative names by TLD.
func (r *MongoCertificateRepo) SANTLDBuckets(ctx context.Context, f *dto.CertificateFilter, limit int) ([]Bucket, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: mergeMatch(match, bson.M{fieldNames + ".0": bson.M{"$exists": true}})}},
		{{Key: "$unwind", Value: "$" + fieldNames}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$toLower": bson.M{"$arrayElemAt": bson.A{
				bson.M{"$split": bson.A{"$" + fieldNames, "."}}, -1,
			}}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr("san tld buckets", err)
	}
	defer cursor.Close(ctx)

	var buckets []Bucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, storeErr("decode san tld buckets", err)
	}
	return buckets, nil
}

// WildcardIssuerBuckets counts wildcard certificates per issuer.
func (r *MongoCertificateRepo) WildcardIssuerBuckets(ctx context.Context, f *dto.CertificateFilter, limit int) ([]Bucket, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	match, err := r.matchFor(ctx, f)
	if err != nil {
		return nil, err
	}
	match = mergeMatch(match, bson.M{fieldNames: bson.M{"$regex": wildcardPattern}})
	groupID := bson.M{"$ifNull": bson.A{
		bson.M{"$arrayElemAt": bson.A{"$" + fieldIssuerOrg, 0}},
		"Unknown",
	}}
	return r.groupCount(ctx, match, groupID, limit, "wildcard issuer buckets")
}

// UniqueIssuers lists distinct issuing organizations for the filter dropdown.
func (r *MongoCertificateRepo) UniqueIssuers(ctx context.Context, limit int) ([]string, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$" + fieldIssuerOrg}},
		{{Key: "$group", Value: bson.M{"_id": "$" + fieldIssuerOrg, "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr("unique issuers", err)
	}
	defer cursor.Close(ctx)

	var buckets []Bucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, storeErr("decode unique issuers", err)
	}
	issuers := make([]string, 0, len(buckets))
	for _, b := range buckets {
		if b.Key != "" {
			issuers = append(issuers, b.Key)
		}
	}
	return issuers, nil
}

// UniqueDomains lists distinct monitored domains for the filter dropdown.
func (r *MongoCertificateRepo) UniqueDomains(ctx context.Context, limit int) ([]string, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$" + fieldDomain, "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr("unique domains", err)
	}
	defer cursor.Close(ctx)

	var buckets []Bucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, storeErr("decode unique domains", err)
	}
	domains := make([]string, 0, len(buckets))
	for _, b := range buckets {
		if b.Key != "" {
			domains = append(domains, b.Key)
		}
	}
	return domains, nil
}

// NotificationCounts gathers the alert-feed counters in one store round trip.
func (r *MongoCertificateRepo) NotificationCounts(ctx context.Context, now time.Time) (*NotificationCounts, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	twoDays := now.AddDate(0, 0, 2)
	sevenDays := now.AddDate(0, 0, 7)
	dayAgo := now.AddDate(0, 0, -1)

	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.M{
			"expiringTwoDays": bson.A{
				bson.M{"$match": expiryRangeClause(now, twoDays, false)},
				bson.M{"$count": "count"},
			},
			"expiringSevenDays": bson.A{
				bson.M{"$match": expiryRangeClause(twoDays, sevenDays, false)},
				bson.M{"$count": "count"},
			},
			"vulnerable": bson.A{
				bson.M{"$match": mergeMatch(
					bson.M{fieldZlintErrors: true},
					statusActiveClause(now),
				)},
				bson.M{"$count": "count"},
			},
			"weakKeys": bson.A{
				bson.M{"$match": mergeMatch(
					bson.M{fieldRSALength: bson.M{"$gt": 0, "$lt": 2048}},
					statusActiveClause(now),
				)},
				bson.M{"$count": "count"},
			},
			"newlyExpired": bson.A{
				bson.M{"$match": expiryRangeClause(dayAgo, now, false)},
				bson.M{"$count": "count"},
			},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr("notification counts", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ExpiringTwoDays   []facetCount `bson:"expiringTwoDays"`
		ExpiringSevenDays []facetCount `bson:"expiringSevenDays"`
		Vulnerable        []facetCount `bson:"vulnerable"`
		WeakKeys          []facetCount `bson:"weakKeys"`
		NewlyExpired      []facetCount `bson:"newlyExpired"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, storeErr("decode notification counts", err)
	}
	if len(rows) == 0 {
		return &NotificationCounts{}, nil
	}
	return &NotificationCounts{
		ExpiringTwoDays:   facetValue(rows[0].ExpiringTwoDays),
		ExpiringSevenDays: facetValue(rows[0].ExpiringSevenDays),
		Vulnerable:        facetValue(rows[0].Vulnerable),
		WeakKeys:          facetValue(rows[0].WeakKeys),
		NewlyExpired:      facetValue(rows[0].NewlyExpired),
	}, nil
}
