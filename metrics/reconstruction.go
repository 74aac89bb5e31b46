package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/visriv/betaVAE/pkg/errors"
)

// ReconstructionMSE は再構成の平均二乗誤差（Mean Squared Error）を計算する
// バッチ全体の全ピクセルにわたって平均を取る
func ReconstructionMSE(X, XHat mat.Matrix) (float64, error) {
	// 入力検証
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return 0, errors.NewValueError("ReconstructionMSE", "empty matrix")
	}

	rHat, cHat := XHat.Dims()
	if rHat != r {
		return 0, errors.NewDimensionError("ReconstructionMSE", r, rHat, 0)
	}
	if cHat != c {
		return 0, errors.NewDimensionError("ReconstructionMSE", c, cHat, 1)
	}

	// MSE = (1/(n*d)) * ΣΣ(x - xhat)²
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			diff := X.At(i, j) - XHat.At(i, j)
			sum += diff * diff
		}
	}

	return sum / float64(r*c), nil
}

// ReconstructionRMSE は再構成の平方根平均二乗誤差（Root Mean Squared Error）を計算する
func ReconstructionRMSE(X, XHat mat.Matrix) (float64, error) {
	mse, err := ReconstructionMSE(X, XHat)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// ReconstructionMAE は再構成の平均絶対誤差（Mean Absolute Error）を計算する
func ReconstructionMAE(X, XHat mat.Matrix) (float64, error) {
	// 入力検証
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return 0, errors.NewValueError("ReconstructionMAE", "empty matrix")
	}

	rHat, cHat := XHat.Dims()
	if rHat != r {
		return 0, errors.NewDimensionError("ReconstructionMAE", r, rHat, 0)
	}
	if cHat != c {
		return 0, errors.NewDimensionError("ReconstructionMAE", c, cHat, 1)
	}

	// MAE = (1/(n*d)) * ΣΣ|x - xhat|
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum += math.Abs(X.At(i, j) - XHat.At(i, j))
		}
	}

	return sum / float64(r*c), nil
}

// PSNR はピーク信号対雑音比（Peak Signal-to-Noise Ratio）をデシベル単位で計算する
// ピクセル値は[0, 1]に正規化されている前提とする
//
// PSNR = -10 * log10(MSE)
//
// 再構成誤差がゼロの場合、PSNRは定義されないため+Infを返し、
// UndefinedMetricWarningを発生させる
func PSNR(X, XHat mat.Matrix) (float64, error) {
	mse, err := ReconstructionMSE(X, XHat)
	if err != nil {
		return 0, err
	}

	if mse == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("PSNR", "zero reconstruction error", math.Inf(1)))
		return math.Inf(1), nil
	}

	return -10 * math.Log10(mse), nil
}
