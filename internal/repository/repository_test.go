package repository_test

import (
	"context"
	"errors"

	"ethsql/internal/db"
	"ethsql/internal/repository"
	"ethsql/internal/repository/fake"
	"ethsql/pkg/sqltypes"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var (
	hash1  = sqltypes.MustHash("0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b")
	hash2  = sqltypes.MustHash("0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060")
	sender = sqltypes.MustAddress("0x1111111111111111111111111111111111111111")
)

var _ = Describe("TransactionRepository", func() {
	var (
		repo        *repository.TransactionRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewTransactionRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateAndSeed", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed(ctx)
		})

		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
				fakeStorage.SaveToTableReturns(nil)
			})

			It("should migrate tables and seed users", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(3))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Transaction{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.UserTransaction{}))

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				_, records := fakeStorage.SaveToTableArgsForCall(0)
				Expect(records).To(BeAssignableToTypeOf(&[]repository.User{}))

				users := *records.(*[]repository.User)
				Expect(users).To(HaveLen(4))
				for _, u := range users {
					Expect(u.Wallet.IsZero()).To(BeFalse())
					Expect(uuid.Validate(u.ID)).To(Succeed())
				}
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(0))
			})
		})

		When("seeding data fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
				fakeStorage.SaveToTableReturns(errors.New("seed error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("seed database: seed error"))
			})
		})
	})

	Describe("SaveTransactions", func() {
		var (
			transactions []repository.Transaction
			err          error
		)

		BeforeEach(func() {
			transactions = []repository.Transaction{
				{
					TransactionHash: hash1,
					BlockNumber:     100,
					From:            sender,
					Value:           sqltypes.NewU256(1),
				},
			}
		})

		JustBeforeEach(func() {
			err = repo.SaveTransactions(ctx, transactions)
		})

		When("save transactions succeeds", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(nil)
			})

			It("should save transactions", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				_, arg := fakeStorage.SaveToTableArgsForCall(0)
				Expect(arg).To(Equal(&transactions))
			})
		})

		When("save transactions fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(errors.New("save error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("save to table: save error"))
			})
		})
	})

	Describe("GetUserHistory", func() {
		var (
			userID string
			err    error
			hashes []sqltypes.Hash
		)

		BeforeEach(func() {
			userID = uuid.NewString()
		})

		JustBeforeEach(func() {
			hashes, err = repo.GetUserHistory(ctx, userID)
		})

		When("user has history", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any) error {
					userTxs := dest.(*[]repository.UserTransaction)
					*userTxs = []repository.UserTransaction{
						{TransactionHash: hash1},
						{TransactionHash: hash2},
					}
					return nil
				}
			})

			It("should return transaction hashes", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(hashes).To(Equal([]sqltypes.Hash{hash1, hash2}))

				Expect(fakeStorage.GetAllByCallCount()).To(Equal(1))
				_, col, val, usrTxs := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("user_id"))
				Expect(val).To(Equal(userID))
				Expect(usrTxs).To(BeAssignableToTypeOf(&[]repository.UserTransaction{}))
			})
		})

		When("user not found", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SaveUserHistory", func() {
		var (
			userID       string
			transactions []sqltypes.Hash
			err          error
		)

		BeforeEach(func() {
			userID = uuid.NewString()
			transactions = []sqltypes.Hash{hash1, hash2}
		})

		JustBeforeEach(func() {
			err = repo.SaveUserHistory(ctx, userID, transactions)
		})

		When("save succeeds", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(nil)
			})

			It("should save user transactions", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				_, arg := fakeStorage.SaveToTableArgsForCall(0)
				Expect(arg).To(Equal(&[]repository.UserTransaction{
					{UserID: userID, TransactionHash: hash1},
					{UserID: userID, TransactionHash: hash2},
				}))
			})
		})

		When("save fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("transactions are empty", func() {
			BeforeEach(func() {
				transactions = []sqltypes.Hash{}
			})

			It("should return immediately", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetUserFromDB", func() {
		var (
			user     repository.User
			err      error
			username string
			testUser repository.User
		)

		BeforeEach(func() {
			username = "alice"
			testUser = repository.User{
				ID:           uuid.NewString(),
				Username:     username,
				PasswordHash: "hashed_password",
				Wallet:       sender,
			}
		})

		JustBeforeEach(func() {
			user, err = repo.GetUserFromDB(ctx, username)
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					user := dest.(*repository.User)
					*user = testUser
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(testUser))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal(username))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetTransactionsByHash", func() {
		var (
			txHashes     []sqltypes.Hash
			transactions []repository.Transaction
			err          error
		)

		BeforeEach(func() {
			txHashes = []sqltypes.Hash{hash1, hash2}
		})

		JustBeforeEach(func() {
			transactions, err = repo.GetTransactionsByHash(ctx, txHashes)
		})

		When("transactions exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any) error {
					txs := dest.(*[]repository.Transaction)
					*txs = []repository.Transaction{
						{TransactionHash: hash1},
						{TransactionHash: hash2},
					}
					return nil
				}
			})

			It("should return transactions", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).To(HaveLen(2))

				Expect(fakeStorage.GetAllByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("transaction_hash"))
				Expect(val).To(Equal(txHashes))
			})
		})

		When("no transactions exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(nil)
			})

			It("should return empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).To(BeEmpty())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetAllTransactions", func() {
		var (
			transactions []repository.Transaction
			err          error
		)

		JustBeforeEach(func() {
			transactions, err = repo.GetAllTransactions(ctx)
		})

		When("the table has rows", func() {
			BeforeEach(func() {
				fakeStorage.GetAllStub = func(ctx context.Context, dest any) error {
					*dest.(*[]repository.Transaction) = []repository.Transaction{{TransactionHash: hash1}}
					return nil
				}
			})

			It("should return them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).To(HaveLen(1))
				Expect(fakeStorage.GetAllCallCount()).To(Equal(1))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).To(MatchError(ContainSubstring("get all transactions")))
			})
		})
	})

	Describe("GetTransactionsBySender", func() {
		var (
			transactions []repository.Transaction
			err          error
		)

		JustBeforeEach(func() {
			transactions, err = repo.GetTransactionsBySender(ctx, sender)
		})

		When("the sender has transactions", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any) error {
					*dest.(*[]repository.Transaction) = []repository.Transaction{
						{TransactionHash: hash1, From: sender},
						{TransactionHash: hash2, From: sender},
					}
					return nil
				}
			})

			It("should query by the sender column", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).To(HaveLen(2))

				_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("from_address"))
				Expect(val).To(Equal(sender))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
