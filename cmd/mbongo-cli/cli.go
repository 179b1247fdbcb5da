package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solelabs/mbongo/pkg/mbocrypto"
	"github.com/solelabs/mbongo/pkg/trie"
	"github.com/solelabs/mbongo/pkg/types"
)

var rootCmd = &cobra.Command{
	Use:   "mbongo-cli",
	Short: "mbongo state-storage CLI",
	Long:  `Command line interface for the mbongo trie and transaction primitives.`,
}

var (
	dbFlag  string
	keyFlag string
	valFlag string

	receiverFlag string
	amountFlag   uint64
	nonceFlag    uint64
	base58Flag   bool
	txHexFlag    string
)

func Execute() {
	if len(os.Args) < 2 {
		rootCmd.Help()
		os.Exit(0)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	var trieCmd = &cobra.Command{
		Use:   "trie",
		Short: "Inspect and mutate a Merkle Patricia Trie",
	}
	rootCmd.AddCommand(trieCmd)
	trieCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "path to a persistent trie database (omit for an ephemeral in-memory trie)")

	var trieInsertCmd = &cobra.Command{
		Use:   "insert",
		Short: "Insert or overwrite a key/value pair",
		Run:   runTrieInsert,
	}
	trieInsertCmd.Flags().StringVar(&keyFlag, "key", "", "key, hex-encoded (0x...)")
	trieInsertCmd.Flags().StringVar(&valFlag, "value", "", "value, hex-encoded (0x...)")
	trieInsertCmd.MarkFlagRequired("key")
	trieInsertCmd.MarkFlagRequired("value")
	trieCmd.AddCommand(trieInsertCmd)

	var trieGetCmd = &cobra.Command{
		Use:   "get",
		Short: "Look up a key",
		Run:   runTrieGet,
	}
	trieGetCmd.Flags().StringVar(&keyFlag, "key", "", "key, hex-encoded (0x...)")
	trieGetCmd.MarkFlagRequired("key")
	trieCmd.AddCommand(trieGetCmd)

	var trieDeleteCmd = &cobra.Command{
		Use:   "delete",
		Short: "Delete a key",
		Run:   runTrieDelete,
	}
	trieDeleteCmd.Flags().StringVar(&keyFlag, "key", "", "key, hex-encoded (0x...)")
	trieDeleteCmd.MarkFlagRequired("key")
	trieCmd.AddCommand(trieDeleteCmd)

	var trieRootCmd = &cobra.Command{
		Use:   "root",
		Short: "Print the current root hash",
		Run:   runTrieRoot,
	}
	trieCmd.AddCommand(trieRootCmd)

	var trieProofCmd = &cobra.Command{
		Use:   "proof",
		Short: "Produce a Merkle proof for a key",
		Run:   runTrieProof,
	}
	trieProofCmd.Flags().StringVar(&keyFlag, "key", "", "key, hex-encoded (0x...)")
	trieProofCmd.MarkFlagRequired("key")
	trieCmd.AddCommand(trieProofCmd)

	var txCmd = &cobra.Command{
		Use:   "tx",
		Short: "Construct and inspect transactions",
	}
	rootCmd.AddCommand(txCmd)

	var txSignCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a transfer transaction with a fresh keypair",
		Run:   runTxSign,
	}
	txSignCmd.Flags().StringVar(&receiverFlag, "to", "", "receiver address, hex-encoded (0x...)")
	txSignCmd.Flags().Uint64Var(&amountFlag, "amount", 0, "amount to transfer")
	txSignCmd.Flags().Uint64Var(&nonceFlag, "nonce", 0, "sender account nonce")
	txSignCmd.Flags().BoolVar(&base58Flag, "base58", false, "also print sender/receiver addresses in Base58Check form")
	txSignCmd.MarkFlagRequired("to")
	txCmd.AddCommand(txSignCmd)

	var txVerifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a transaction's signature",
		Run:   runTxVerify,
	}
	txVerifyCmd.Flags().StringVar(&txHexFlag, "tx", "", "encoded transaction, hex-encoded (0x...)")
	txVerifyCmd.MarkFlagRequired("tx")
	txCmd.AddCommand(txVerifyCmd)
}

// openTrie opens an in-memory trie, or a persistent one rooted at dbFlag
// with its current root restored from the sidecar root file.
func openTrie() (*trie.Trie, error) {
	if dbFlag == "" {
		return trie.NewInMemory(), nil
	}
	t, err := trie.OpenPersistent(dbFlag)
	if err != nil {
		return nil, err
	}
	if root, ok, err := readSidecarRoot(dbFlag); err != nil {
		t.Close()
		return nil, err
	} else if ok {
		t.SetRoot(root)
	}
	return t, nil
}

// closeTrie persists the current root to the sidecar file (for persistent
// tries) and releases the underlying store.
func closeTrie(t *trie.Trie) error {
	if dbFlag != "" {
		if err := writeSidecarRoot(dbFlag, t.Root()); err != nil {
			t.Close()
			return err
		}
	}
	return t.Close()
}

func sidecarRootPath(dbPath string) string {
	return filepath.Join(dbPath, "CURRENT_ROOT")
}

func readSidecarRoot(dbPath string) (types.Hash, bool, error) {
	data, err := os.ReadFile(sidecarRootPath(dbPath))
	if os.IsNotExist(err) {
		return types.Hash{}, false, nil
	}
	if err != nil {
		return types.Hash{}, false, err
	}
	h, err := types.ParseHash(strings.TrimSpace(string(data)))
	if err != nil {
		return types.Hash{}, false, err
	}
	return h, true, nil
}

func writeSidecarRoot(dbPath string, h types.Hash) error {
	if err := os.MkdirAll(dbPath, 0o755); err != nil {
		return err
	}
	return os.WriteFile(sidecarRootPath(dbPath), []byte(h.String()+"\n"), 0o644)
}

func decodeHexArg(name, s string) []byte {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		printError("invalid %s: %s", name, err)
		os.Exit(1)
	}
	return b
}

func runTrieInsert(cmd *cobra.Command, args []string) {
	key := decodeHexArg("key", keyFlag)
	value := decodeHexArg("value", valFlag)

	t, err := openTrie()
	if err != nil {
		printError("opening trie: %s", err)
		os.Exit(1)
	}

	if err := t.Insert(key, value); err != nil {
		printError("insert: %s", err)
		t.Close()
		os.Exit(1)
	}

	if err := closeTrie(t); err != nil {
		printError("closing trie: %s", err)
		os.Exit(1)
	}

	printSuccess("inserted %d-byte value under key 0x%x", len(value), key)
	fmt.Printf("root: %s\n", t.Root())
}

func runTrieGet(cmd *cobra.Command, args []string) {
	key := decodeHexArg("key", keyFlag)

	t, err := openTrie()
	if err != nil {
		printError("opening trie: %s", err)
		os.Exit(1)
	}
	defer closeTrie(t)

	value, ok, err := t.Get(key)
	if err != nil {
		printError("get: %s", err)
		os.Exit(1)
	}
	if !ok {
		printWarning("key 0x%x not found", key)
		os.Exit(1)
	}
	fmt.Printf("0x%x\n", value)
}

func runTrieDelete(cmd *cobra.Command, args []string) {
	key := decodeHexArg("key", keyFlag)

	t, err := openTrie()
	if err != nil {
		printError("opening trie: %s", err)
		os.Exit(1)
	}

	removed, err := t.Delete(key)
	if err != nil {
		printError("delete: %s", err)
		t.Close()
		os.Exit(1)
	}

	if err := closeTrie(t); err != nil {
		printError("closing trie: %s", err)
		os.Exit(1)
	}

	if !removed {
		printWarning("key 0x%x was not present", key)
		return
	}
	printSuccess("deleted key 0x%x", key)
	fmt.Printf("root: %s\n", t.Root())
}

func runTrieRoot(cmd *cobra.Command, args []string) {
	t, err := openTrie()
	if err != nil {
		printError("opening trie: %s", err)
		os.Exit(1)
	}
	defer closeTrie(t)

	fmt.Println(t.Root())
}

func runTrieProof(cmd *cobra.Command, args []string) {
	key := decodeHexArg("key", keyFlag)

	t, err := openTrie()
	if err != nil {
		printError("opening trie: %s", err)
		os.Exit(1)
	}
	defer closeTrie(t)

	nodes, found, err := t.GetProof(key)
	if err != nil {
		printError("proof: %s", err)
		os.Exit(1)
	}
	if !found {
		printWarning("key 0x%x not found; returning non-membership proof", key)
	}
	for i, n := range nodes {
		fmt.Printf("%d: %s  0x%x\n", i, n.Hash, n.Encoded)
	}
}

func runTxSign(cmd *cobra.Command, args []string) {
	receiverBytes := decodeHexArg("to", receiverFlag)
	if len(receiverBytes) != len(types.Address{}) {
		printError("to: expected %d bytes, got %d", len(types.Address{}), len(receiverBytes))
		os.Exit(1)
	}
	var receiver types.Address
	copy(receiver[:], receiverBytes)

	pub, priv, err := mbocrypto.GenerateKey()
	if err != nil {
		printError("generating keypair: %s", err)
		os.Exit(1)
	}
	var sender types.Address
	copy(sender[:], pub)

	tx := types.Transaction{
		Type:     types.TxTransfer,
		Sender:   sender,
		Receiver: receiver,
		Amount:   types.AmountFromUint64(amountFlag),
		Nonce:    nonceFlag,
	}
	tx.Sign(priv)

	printSuccess("signed transfer from a freshly generated key")
	fmt.Printf("sender:   %s\n", tx.Sender)
	fmt.Printf("receiver: %s\n", tx.Receiver)
	if base58Flag {
		fmt.Printf("sender (base58):   %s\n", tx.Sender.Base58Check())
		fmt.Printf("receiver (base58): %s\n", tx.Receiver.Base58Check())
	}
	fmt.Printf("amount:   %s\n", tx.Amount)
	fmt.Printf("nonce:    %d\n", tx.Nonce)
	fmt.Printf("encoded:  0x%x\n", tx.Encode())
}

func runTxVerify(cmd *cobra.Command, args []string) {
	data := decodeHexArg("tx", txHexFlag)

	tx, err := types.DecodeTransaction(data)
	if err != nil {
		printError("decoding transaction: %s", err)
		os.Exit(1)
	}

	if tx.VerifySignature() {
		printSuccess("signature valid for sender %s", tx.Sender)
	} else {
		printError("signature INVALID for sender %s", tx.Sender)
		os.Exit(1)
	}
}
